// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// DataRetention wraps the data retention policy endpoints. Requires an
// Enterprise license.
type DataRetention struct{ resource }

// GetUserTeamPolicies gets the policies applied to the teams userID is a
// member of.
func (d *DataRetention) GetUserTeamPolicies(ctx context.Context, userID string, paging Paging) (*Response, error) {
	req := d.newJSONRequest()
	paging.addTo(req)
	return d.do(ctx, mmclient.GET, d.rootURL("users", userID, "data_retention", "team_policies"), req, mmclient.AttachBody)
}

func (d *DataRetention) GetUserChannelPolicies(ctx context.Context, userID string, paging Paging) (*Response, error) {
	req := d.newJSONRequest()
	paging.addTo(req)
	return d.do(ctx, mmclient.GET, d.rootURL("users", userID, "data_retention", "channel_policies"), req, mmclient.AttachBody)
}

func (d *DataRetention) GetGlobalPolicy(ctx context.Context) (*Response, error) {
	return d.do(ctx, mmclient.GET, d.url("policy"), nil, mmclient.AttachNone)
}

// GetPoliciesCount gets the number of granular policies.
func (d *DataRetention) GetPoliciesCount(ctx context.Context) (*Response, error) {
	return d.do(ctx, mmclient.GET, d.url("policies_count"), nil, mmclient.AttachNone)
}

func (d *DataRetention) GetPolicies(ctx context.Context, paging Paging) (*Response, error) {
	req := d.newJSONRequest()
	paging.addTo(req)
	return d.do(ctx, mmclient.GET, d.url("policies"), req, mmclient.AttachBody)
}

// CreatePolicy creates a granular policy. postDuration is in days; -1
// keeps posts forever.
func (d *DataRetention) CreatePolicy(ctx context.Context, displayName string, postDuration int, teamIDs, channelIDs mmclient.Opt[[]string]) (*Response, error) {
	req := d.newJSONRequest()
	req.AddToJSON("display_name", displayName)
	req.AddToJSON("post_duration", postDuration)
	mmclient.AddOpt(req, "team_ids", teamIDs)
	mmclient.AddOpt(req, "channel_ids", channelIDs)
	return d.do(ctx, mmclient.POST, d.url("policies"), req, mmclient.AttachBody)
}

func (d *DataRetention) GetPolicy(ctx context.Context, policyID string) (*Response, error) {
	return d.do(ctx, mmclient.GET, d.url("policies", policyID), nil, mmclient.AttachNone)
}

func (d *DataRetention) DeletePolicy(ctx context.Context, policyID string) (*Response, error) {
	return d.do(ctx, mmclient.DEL, d.url("policies", policyID), nil, mmclient.AttachNone)
}
