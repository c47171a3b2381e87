// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-api-go/mmapi"
	"github.com/mattermost/mattermost-api-go/mmclient"
)

var (
	postRootID  string
	postFileIDs []string
)

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.AddCommand(
		postCreateCmd,
		postGetCmd,
		postDeleteCmd,
	)

	postCreateCmd.Flags().StringVar(&postRootID, "root", "", "ID of the thread root to reply to")
	postCreateCmd.Flags().StringSliceVar(&postFileIDs, "file", nil, "ID of an uploaded file to attach, may be repeated")
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create, show and delete posts",
}

var postCreateCmd = &cobra.Command{
	Use:   "create <channel-id> <message>",
	Short: "Post a message to a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}

		post := mmapi.PostCreate{
			ChannelID: args[0],
			Message:   mmclient.Some(args[1]),
			RootID:    optString(cmd, "root", postRootID),
		}
		if len(postFileIDs) > 0 {
			post.FileIDs = mmclient.Some(postFileIDs)
		}
		resp, err := api.Posts().CreatePost(cmd.Context(), post, mmclient.None[bool]())
		return respond(cmd, resp, err)
	},
}

var postGetCmd = &cobra.Command{
	Use:   "get <post-id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Posts().GetPost(cmd.Context(), args[0], mmclient.None[bool]())
		return respond(cmd, resp, err)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Posts().DeletePost(cmd.Context(), args[0])
		return respond(cmd, resp, err)
	},
}
