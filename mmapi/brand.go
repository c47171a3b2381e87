// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Brand struct{ resource }

// GetBrandImage returns the raw image in Response.Body, or a 404 when none
// was uploaded.
func (b *Brand) GetBrandImage(ctx context.Context) (*Response, error) {
	return b.do(ctx, mmclient.GET, b.url("image"), nil, mmclient.AttachNone)
}

// UploadBrandImage uploads a brand image. Must have manage_system permission.
func (b *Brand) UploadBrandImage(ctx context.Context, filename string, image io.Reader) (*Response, error) {
	req := b.newMultipartRequest()
	req.AddToMultipartFormData("image", mmclient.File{Name: filename, Content: image})
	return b.do(ctx, mmclient.POST, b.url("image"), req, mmclient.AttachFile)
}

// DeleteBrandImage deletes the current brand image. Minimum server version: 5.6.
func (b *Brand) DeleteBrandImage(ctx context.Context) (*Response, error) {
	return b.do(ctx, mmclient.DEL, b.url("image"), nil, mmclient.AttachNone)
}
