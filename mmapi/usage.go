// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Usage struct{ resource }

// GetPostsUsage gets the rounded number of posts on the workspace.
func (u *Usage) GetPostsUsage(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("posts"), nil, mmclient.AttachNone)
}

func (u *Usage) GetStorageUsage(ctx context.Context) (*Response, error) {
	return u.do(ctx, mmclient.GET, u.url("storage"), nil, mmclient.AttachNone)
}
