// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Groups wraps /groups and the group listings filed under other resources.
// LDAP groups require an Enterprise license; custom groups a Professional
// one.
type Groups struct{ resource }

// DeleteLDAPGroupLink unlinks an LDAP group, identified by its remote ID,
// from Mattermost.
func (g *Groups) DeleteLDAPGroupLink(ctx context.Context, remoteID string) (*Response, error) {
	return g.do(ctx, mmclient.DEL, g.rootURL("ldap", "groups", remoteID, "link"), nil, mmclient.AttachNone)
}

type GroupQuery struct {
	Paging
	Q                      mmclient.Opt[string]
	IncludeMemberCount     mmclient.Opt[bool]
	NotAssociatedToTeam    mmclient.Opt[string]
	NotAssociatedToChannel mmclient.Opt[string]
	Since                  mmclient.Opt[int64]
	FilterAllowReference   mmclient.Opt[bool]
}

func (g *Groups) GetGroups(ctx context.Context, query GroupQuery) (*Response, error) {
	req := g.newJSONRequest()
	query.addTo(req)
	mmclient.AddOpt(req, "q", query.Q)
	mmclient.AddOpt(req, "include_member_count", query.IncludeMemberCount)
	mmclient.AddOpt(req, "not_associated_to_team", query.NotAssociatedToTeam)
	mmclient.AddOpt(req, "not_associated_to_channel", query.NotAssociatedToChannel)
	mmclient.AddOpt(req, "since", query.Since)
	mmclient.AddOpt(req, "filter_allow_reference", query.FilterAllowReference)
	return g.do(ctx, mmclient.GET, g.url(), req, mmclient.AttachBody)
}

// CreateCustomGroup creates a custom group with the given initial members.
// group.Source must be model.GroupSourceCustom.
func (g *Groups) CreateCustomGroup(ctx context.Context, group *model.Group, userIDs []string) (*Response, error) {
	req := g.newJSONRequest()
	req.AddToJSON("group", group)
	req.AddToJSON("user_ids", userIDs)
	return g.do(ctx, mmclient.POST, g.url(), req, mmclient.AttachBody)
}

func (g *Groups) GetGroup(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID), nil, mmclient.AttachNone)
}

// DeleteCustomGroup soft deletes a custom group. It can be brought back
// with RestoreGroup.
func (g *Groups) DeleteCustomGroup(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.DEL, g.url(groupID), nil, mmclient.AttachNone)
}

func (g *Groups) PatchGroup(ctx context.Context, groupID string, name, displayName, description mmclient.Opt[string]) (*Response, error) {
	req := g.newJSONRequest()
	mmclient.AddOpt(req, "name", name)
	mmclient.AddOpt(req, "display_name", displayName)
	mmclient.AddOpt(req, "description", description)
	return g.do(ctx, mmclient.PUT, g.url(groupID, "patch"), req, mmclient.AttachBody)
}

func (g *Groups) RestoreGroup(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.POST, g.url(groupID, "restore"), nil, mmclient.AttachNone)
}

func (g *Groups) LinkTeam(ctx context.Context, groupID, teamID string) (*Response, error) {
	return g.do(ctx, mmclient.POST, g.url(groupID, "teams", teamID, "link"), nil, mmclient.AttachNone)
}

func (g *Groups) UnlinkTeam(ctx context.Context, groupID, teamID string) (*Response, error) {
	return g.do(ctx, mmclient.DEL, g.url(groupID, "teams", teamID, "link"), nil, mmclient.AttachNone)
}

func (g *Groups) LinkChannel(ctx context.Context, groupID, channelID string) (*Response, error) {
	return g.do(ctx, mmclient.POST, g.url(groupID, "channels", channelID, "link"), nil, mmclient.AttachNone)
}

func (g *Groups) UnlinkChannel(ctx context.Context, groupID, channelID string) (*Response, error) {
	return g.do(ctx, mmclient.DEL, g.url(groupID, "channels", channelID, "link"), nil, mmclient.AttachNone)
}

func (g *Groups) GetGroupSyncableForTeam(ctx context.Context, groupID, teamID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID, "teams", teamID), nil, mmclient.AttachNone)
}

func (g *Groups) GetGroupSyncableForChannel(ctx context.Context, groupID, channelID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID, "channels", channelID), nil, mmclient.AttachNone)
}

func (g *Groups) GetGroupTeams(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID, "teams"), nil, mmclient.AttachNone)
}

func (g *Groups) GetGroupChannels(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID, "channels"), nil, mmclient.AttachNone)
}

func (g *Groups) PatchGroupSyncableForTeam(ctx context.Context, groupID, teamID string, autoAdd mmclient.Opt[bool]) (*Response, error) {
	req := g.newJSONRequest()
	mmclient.AddOpt(req, "auto_add", autoAdd)
	return g.do(ctx, mmclient.PUT, g.url(groupID, "teams", teamID, "patch"), req, mmclient.AttachBody)
}

func (g *Groups) PatchGroupSyncableForChannel(ctx context.Context, groupID, channelID string, autoAdd mmclient.Opt[bool]) (*Response, error) {
	req := g.newJSONRequest()
	mmclient.AddOpt(req, "auto_add", autoAdd)
	return g.do(ctx, mmclient.PUT, g.url(groupID, "channels", channelID, "patch"), req, mmclient.AttachBody)
}

func (g *Groups) GetGroupUsers(ctx context.Context, groupID string, paging Paging) (*Response, error) {
	req := g.newJSONRequest()
	paging.addTo(req)
	return g.do(ctx, mmclient.GET, g.url(groupID, "members"), req, mmclient.AttachBody)
}

func (g *Groups) RemoveGroupMembers(ctx context.Context, groupID string, userIDs []string) (*Response, error) {
	req := g.newJSONRequest()
	req.AddToJSON("user_ids", userIDs)
	return g.do(ctx, mmclient.DEL, g.url(groupID, "members"), req, mmclient.AttachBody)
}

func (g *Groups) AddGroupMembers(ctx context.Context, groupID string, userIDs []string) (*Response, error) {
	req := g.newJSONRequest()
	req.AddToJSON("user_ids", userIDs)
	return g.do(ctx, mmclient.POST, g.url(groupID, "members"), req, mmclient.AttachBody)
}

func (g *Groups) GetGroupStats(ctx context.Context, groupID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.url(groupID, "stats"), nil, mmclient.AttachNone)
}

func (g *Groups) GetChannelGroups(ctx context.Context, channelID string, paging Paging, filterAllowReference mmclient.Opt[bool]) (*Response, error) {
	req := g.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "filter_allow_reference", filterAllowReference)
	return g.do(ctx, mmclient.GET, g.rootURL("channels", channelID, "groups"), req, mmclient.AttachBody)
}

func (g *Groups) GetTeamGroups(ctx context.Context, teamID string, paging Paging, filterAllowReference mmclient.Opt[bool]) (*Response, error) {
	req := g.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "filter_allow_reference", filterAllowReference)
	return g.do(ctx, mmclient.GET, g.rootURL("teams", teamID, "groups"), req, mmclient.AttachBody)
}

// GetTeamGroupsByChannels gets the groups of each channel of a team, keyed
// by channel ID.
func (g *Groups) GetTeamGroupsByChannels(ctx context.Context, teamID string, paging Paging, filterAllowReference, paginate mmclient.Opt[bool]) (*Response, error) {
	req := g.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "filter_allow_reference", filterAllowReference)
	mmclient.AddOpt(req, "paginate", paginate)
	return g.do(ctx, mmclient.GET, g.rootURL("teams", teamID, "groups_by_channels"), req, mmclient.AttachBody)
}

func (g *Groups) GetUserGroups(ctx context.Context, userID string) (*Response, error) {
	return g.do(ctx, mmclient.GET, g.rootURL("users", userID, "groups"), nil, mmclient.AttachNone)
}
