// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type SharedChannels struct{ resource }

// GetSharedChannels gets the channels of a team shared with remote
// clusters.
func (s *SharedChannels) GetSharedChannels(ctx context.Context, teamID string, paging Paging) (*Response, error) {
	req := s.newJSONRequest()
	paging.addTo(req)
	return s.do(ctx, mmclient.GET, s.url(teamID), req, mmclient.AttachBody)
}

// GetRemoteClusterInfo gets the name and URL of a remote cluster.
func (s *SharedChannels) GetRemoteClusterInfo(ctx context.Context, remoteID string) (*Response, error) {
	return s.do(ctx, mmclient.GET, s.url("remote_info", remoteID), nil, mmclient.AttachNone)
}
