// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-api-go/mmapi"
	"github.com/mattermost/mattermost-api-go/mmclient"
)

var (
	botDisplayName    string
	botDescription    string
	botIncludeDeleted bool
	botPage           int
	botPerPage        int
)

func init() {
	rootCmd.AddCommand(botCmd)
	botCmd.AddCommand(
		botCreateCmd,
		botListCmd,
		botGetCmd,
		botEnableCmd,
		botDisableCmd,
	)

	botCreateCmd.Flags().StringVar(&botDisplayName, "display-name", "", "display name of the bot")
	botCreateCmd.Flags().StringVar(&botDescription, "description", "", "description of the bot")

	botListCmd.Flags().BoolVar(&botIncludeDeleted, "include-deleted", false, "include disabled bots")
	botListCmd.Flags().IntVar(&botPage, "page", 0, "page to fetch")
	botListCmd.Flags().IntVar(&botPerPage, "per-page", 60, "bots per page")
}

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Manage bot accounts",
}

var botCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a bot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Bots().CreateBot(cmd.Context(), args[0],
			optString(cmd, "display-name", botDisplayName),
			optString(cmd, "description", botDescription))
		return respond(cmd, resp, err)
	},
}

var botListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Bots().GetBots(cmd.Context(), mmapi.Page(botPage, botPerPage),
			optBool(cmd, "include-deleted", botIncludeDeleted), mmclient.None[bool]())
		return respond(cmd, resp, err)
	},
}

var botGetCmd = &cobra.Command{
	Use:   "get <bot-user-id>",
	Short: "Show a bot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Bots().GetBot(cmd.Context(), args[0], mmclient.None[bool]())
		return respond(cmd, resp, err)
	},
}

var botEnableCmd = &cobra.Command{
	Use:   "enable <bot-user-id>",
	Short: "Enable a disabled bot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Bots().EnableBot(cmd.Context(), args[0])
		return respond(cmd, resp, err)
	},
}

var botDisableCmd = &cobra.Command{
	Use:   "disable <bot-user-id>",
	Short: "Disable a bot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Bots().DisableBot(cmd.Context(), args[0])
		return respond(cmd, resp, err)
	},
}

// optString is set only when the flag was given on the command line, so an
// explicit empty value is still sent.
func optString(cmd *cobra.Command, flag, value string) mmclient.Opt[string] {
	if !cmd.Flags().Changed(flag) {
		return mmclient.None[string]()
	}
	return mmclient.Some(value)
}

func optBool(cmd *cobra.Command, flag string, value bool) mmclient.Opt[bool] {
	if !cmd.Flags().Changed(flag) {
		return mmclient.None[bool]()
	}
	return mmclient.Some(value)
}
