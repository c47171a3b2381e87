// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mattermost/mattermost-api-go/utils"
)

const (
	EnvSiteURL    = "MM_SERVICESETTINGS_SITEURL"
	EnvAdminToken = "MM_ADMIN_TOKEN"
)

type Config struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token,omitempty"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mmapictl.yaml"
	}
	return filepath.Join(home, ".config", "mmapictl.yaml")
}

// loadConfig starts from the environment and applies the config file at
// path on top. A missing file is only an error when it was asked for
// explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	conf := Config{
		ServerURL: os.Getenv(EnvSiteURL),
		Token:     os.Getenv(EnvAdminToken),
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
		return conf, nil
	case err != nil:
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}

	fromFile := Config{}
	if err = yaml.Unmarshal(data, &fromFile); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	return conf.merge(fromFile), nil
}

func saveConfig(path string, conf Config) error {
	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0600), "failed to write config file %s", path)
}

// merge returns c with the non-empty values of other applied.
func (c Config) merge(other Config) Config {
	if other.ServerURL != "" {
		c.ServerURL = other.ServerURL
	}
	if other.Token != "" {
		c.Token = other.Token
	}
	return c
}

func (c Config) Validate(requireToken bool) error {
	var result error
	if c.ServerURL == "" {
		result = multierror.Append(result,
			utils.NewInvalidError("server URL is not set, use --url, %s or the config file", EnvSiteURL))
	} else if err := utils.IsValidHTTPURL(c.ServerURL); err != nil {
		result = multierror.Append(result, utils.NewInvalidError(err))
	}
	if requireToken && c.Token == "" {
		result = multierror.Append(result,
			utils.NewInvalidError("token is not set, use --token, %s, the config file, or login", EnvAdminToken))
	}
	return result
}

func (c Config) Loggable() []interface{} {
	return []interface{}{"server_url", c.ServerURL, "token", utils.LastN(c.Token, 4)}
}
