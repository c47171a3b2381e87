// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Uploads wraps resumable upload sessions. A session is created for a
// file of known size, then the data is sent in one or more chunks.
type Uploads struct{ resource }

func (u *Uploads) CreateUpload(ctx context.Context, channelID, filename string, fileSize int64) (*Response, error) {
	req := u.newJSONRequest()
	req.AddToJSON("channel_id", channelID)
	req.AddToJSON("filename", filename)
	req.AddToJSON("file_size", fileSize)
	return u.do(ctx, mmclient.POST, u.url(), req, mmclient.AttachBody)
}

// GetUpload gets an upload session, whose file_offset tells where to resume.
func (u *Uploads) GetUpload(ctx context.Context, uploadID string) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url(uploadID), nil, mmclient.AttachNone)
}

// UploadData sends the next chunk of an upload session. The response has
// no content until the last chunk, which returns the file info.
func (u *Uploads) UploadData(ctx context.Context, uploadID, filename string, data io.Reader) (*Response, error) {
	req := u.newMultipartRequest()
	req.AddToMultipartFormData("data", mmclient.File{Name: filename, Content: data})
	return u.do(ctx, mmclient.POST, u.url(uploadID), req, mmclient.AttachFile)
}
