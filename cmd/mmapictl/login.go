// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/mattermost/mattermost-api-go/mmapi"
	"github.com/mattermost/mattermost-api-go/mmclient"
)

var (
	loginPassword string
	loginMFAToken string
	loginSave     bool
)

func init() {
	rootCmd.AddCommand(
		loginCmd,
		logoutCmd,
		meCmd,
	)

	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password, prompted for when omitted")
	loginCmd.Flags().StringVar(&loginMFAToken, "mfa", "", "MFA token")
	loginCmd.Flags().BoolVar(&loginSave, "save", false, "save the server URL and session token to the config file")
}

var loginCmd = &cobra.Command{
	Use:   "login <login-id>",
	Short: "Log in with a username or email and print the session token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(false)
		if err != nil {
			return err
		}

		password := loginPassword
		if password == "" {
			password, err = askPassword(args[0])
			if err != nil {
				return err
			}
		}

		opts := mmapi.LoginOptions{}
		if loginMFAToken != "" {
			opts.MFAToken = mmclient.Some(loginMFAToken)
		}
		resp, err := api.Users().Login(cmd.Context(), args[0], password, opts)
		if err != nil {
			return respond(cmd, resp, err)
		}

		sessionToken := resp.Header.Get(mmapi.HeaderToken)
		if sessionToken == "" {
			return errors.New("login succeeded but the server returned no session token")
		}
		log.Debugw("Logged in", "login_id", args[0], "request_id", resp.Meta.RequestId)

		if loginSave {
			conf := Config{
				ServerURL: api.Base().Identity().ServerURL,
				Token:     sessionToken,
			}
			path := configPath
			if path == "" {
				path = defaultConfigPath()
			}
			if err = saveConfig(path, conf); err != nil {
				return err
			}
			log.Infow("Saved session token", "path", path)
		}

		fmt.Fprintln(cmd.OutOrStdout(), sessionToken)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Users().Logout(cmd.Context())
		return respond(cmd, resp, err)
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the user the token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Users().GetUser(cmd.Context(), "me")
		return respond(cmd, resp, err)
	},
}

// askPassword reads the password from the terminal without echo. When stdin
// is not a terminal, it falls back to /dev/tty.
func askPassword(loginID string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", loginID)
	defer fmt.Fprintln(os.Stderr)

	if terminal.IsTerminal(int(os.Stdin.Fd())) {
		return readPassword(int(os.Stdin.Fd()))
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return "", errors.Wrap(err, "no terminal available to prompt for a password, use --password")
	}
	defer tty.Close()
	return readPassword(int(tty.Fd()))
}

func readPassword(fd int) (string, error) {
	b, err := terminal.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}
	return string(b), nil
}
