// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Cluster struct{ resource }

// GetClusterStatus returns the status of each node of a high availability
// cluster. Must have manage_system permission.
func (c *Cluster) GetClusterStatus(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("status"), nil, mmclient.AttachNone)
}
