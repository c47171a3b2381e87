// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// mmapictl is a command line client for the Mattermost REST API.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/mattermost/mattermost-api-go/mmapi"
	"github.com/mattermost/mattermost-api-go/mmclient"
	"github.com/mattermost/mattermost-api-go/utils"
	"github.com/mattermost/mattermost-api-go/utils/httputils"
)

const userAgent = "mmapictl/1.0"

var (
	verbose    bool
	configPath string
	serverURL  string
	token      string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+defaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&serverURL, "url", "", "Mattermost server URL, overrides "+EnvSiteURL)
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "access token, overrides "+EnvAdminToken)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Errorw("Command failed")
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "mmapictl",
	Short:         "A tool to call the Mattermost REST API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log = utils.NewCommandLogger(zapcore.DebugLevel)
		}
	},
}

// currentConfig resolves the configuration from the environment, the config
// file and the flags, in increasing order of precedence.
func currentConfig(requireToken bool) (Config, error) {
	path, explicit := configPath, true
	if path == "" {
		path, explicit = defaultConfigPath(), false
	}

	conf, err := loadConfig(path, explicit)
	if err != nil {
		return Config{}, err
	}
	conf = conf.merge(Config{
		ServerURL: serverURL,
		Token:     token,
	})
	if conf.ServerURL != "" {
		// An unparseable URL is left as is for Validate to report.
		if normalized, nerr := httputils.NormalizeServerURL(conf.ServerURL); nerr == nil {
			conf.ServerURL = normalized
		}
	}
	if err = conf.Validate(requireToken); err != nil {
		return Config{}, err
	}
	log.Debugw("Using config", "path", path, conf)
	return conf, nil
}

func newAPI(requireToken bool) (*mmapi.API, error) {
	conf, err := currentConfig(requireToken)
	if err != nil {
		return nil, err
	}
	return mmapi.New(conf.Token, conf.ServerURL,
		mmclient.WithLogger(log),
		mmclient.WithUserAgent(userAgent),
	), nil
}

// respond prints the response, including the body of an error response, and
// passes err through.
func respond(cmd *cobra.Command, resp *mmclient.Response, err error) error {
	if resp != nil {
		if perr := newPrinter(cmd.OutOrStdout()).PrintResponse(resp); perr != nil {
			return perr
		}
	}
	if err != nil {
		return errors.Wrap(err, cmd.CommandPath())
	}
	return nil
}
