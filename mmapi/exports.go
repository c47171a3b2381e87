// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Exports struct{ resource }

// ListExports lists the names of the export files on the server.
func (e *Exports) ListExports(ctx context.Context) (*Response, error) {
	return e.do(ctx, mmclient.GET, e.url(), nil, mmclient.AttachNone)
}

// DownloadExport returns the export archive in Response.Body.
func (e *Exports) DownloadExport(ctx context.Context, name string) (*Response, error) {
	return e.do(ctx, mmclient.GET, e.url(name), nil, mmclient.AttachNone)
}

func (e *Exports) DeleteExport(ctx context.Context, name string) (*Response, error) {
	return e.do(ctx, mmclient.DEL, e.url(name), nil, mmclient.AttachNone)
}
