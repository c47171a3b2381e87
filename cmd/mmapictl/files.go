// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

var fileOutput string

func init() {
	rootCmd.AddCommand(fileCmd)
	fileCmd.AddCommand(
		fileUploadCmd,
		fileInfoCmd,
		fileDownloadCmd,
	)

	fileDownloadCmd.Flags().StringVarP(&fileOutput, "output", "o", "", "write the file here instead of printing it")
}

var fileCmd = &cobra.Command{
	Use:   "file",
	Short: "Upload and download files",
}

var fileUploadCmd = &cobra.Command{
	Use:   "upload <channel-id> <path>",
	Short: "Upload a file to a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		log.Debugw("Uploading file", "path", args[1], "size", formatSize(info.Size()))

		resp, err := api.Files().UploadFile(cmd.Context(), args[0], filepath.Base(args[1]), f, mmclient.None[string]())
		return respond(cmd, resp, err)
	},
}

var fileInfoCmd = &cobra.Command{
	Use:   "info <file-id>",
	Short: "Show the metadata of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Files().GetFileInfo(cmd.Context(), args[0])
		return respond(cmd, resp, err)
	},
}

var fileDownloadCmd = &cobra.Command{
	Use:   "download <file-id>",
	Short: "Download a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(true)
		if err != nil {
			return err
		}
		resp, err := api.Files().GetFile(cmd.Context(), args[0])
		if err != nil || fileOutput == "" {
			return respond(cmd, resp, err)
		}

		if err = os.WriteFile(fileOutput, resp.Body, 0600); err != nil {
			return errors.Wrapf(err, "failed to write %s", fileOutput)
		}
		log.Infow("Downloaded file", "path", fileOutput, "size", formatSize(int64(len(resp.Body))))
		return nil
	},
}

func formatSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return bytefmt.ByteSize(uint64(n))
}
