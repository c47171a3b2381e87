// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(
		statusGetCmd,
		statusSetCmd,
	)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show and set user statuses",
}

var statusGetCmd = &cobra.Command{
	Use:   "get [user-id]",
	Short: "Show the status of a user, the current user by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Status().GetStatus(cmd.Context(), userArg(args, 0))
		return respond(cmd, resp, err)
	},
}

var statusSetCmd = &cobra.Command{
	Use:       "set <online|away|dnd|offline> [user-id]",
	Short:     "Set the status of a user, the current user by default",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"online", "away", "dnd", "offline"},
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Status().UpdateStatus(cmd.Context(), userArg(args, 1), args[0], mmclient.None[int64]())
		return respond(cmd, resp, err)
	},
}

func userArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return "me"
}
