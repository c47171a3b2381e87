// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Bots wraps /bots. Minimum server version: 5.10.
type Bots struct{ resource }

// ConvertUserToBot converts a user into a bot. Must have manage_system
// permission. Minimum server version: 5.26.
func (b *Bots) ConvertUserToBot(ctx context.Context, userID string) (*Response, error) {
	return b.do(ctx, mmclient.POST, b.rootURL("users", userID, "convert_to_bot"), nil, mmclient.AttachNone)
}

// CreateBot creates a bot account. Must have create_bot permission.
func (b *Bots) CreateBot(ctx context.Context, username string, displayName, description mmclient.Opt[string]) (*Response, error) {
	req := b.newJSONRequest()
	req.AddToJSON("username", username)
	mmclient.AddOpt(req, "display_name", displayName)
	mmclient.AddOpt(req, "description", description)
	return b.do(ctx, mmclient.POST, b.url(), req, mmclient.AttachBody)
}

// GetBots gets a page of bots. onlyOrphaned limits the result to bots whose
// owner has been deactivated.
func (b *Bots) GetBots(ctx context.Context, paging Paging, includeDeleted, onlyOrphaned mmclient.Opt[bool]) (*Response, error) {
	req := b.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "include_deleted", includeDeleted)
	mmclient.AddOpt(req, "only_orphaned", onlyOrphaned)
	return b.do(ctx, mmclient.GET, b.url(), req, mmclient.AttachBody)
}

// PatchBot updates only the given fields of a bot. Must have manage_bots
// permission.
func (b *Bots) PatchBot(ctx context.Context, botUserID string, username, displayName, description mmclient.Opt[string]) (*Response, error) {
	req := b.newJSONRequest()
	mmclient.AddOpt(req, "username", username)
	mmclient.AddOpt(req, "display_name", displayName)
	mmclient.AddOpt(req, "description", description)
	return b.do(ctx, mmclient.PUT, b.url(botUserID), req, mmclient.AttachBody)
}

func (b *Bots) GetBot(ctx context.Context, botUserID string, includeDeleted mmclient.Opt[bool]) (*Response, error) {
	req := b.newJSONRequest()
	mmclient.AddOpt(req, "include_deleted", includeDeleted)
	return b.do(ctx, mmclient.GET, b.url(botUserID), req, mmclient.AttachBody)
}

func (b *Bots) DisableBot(ctx context.Context, botUserID string) (*Response, error) {
	return b.do(ctx, mmclient.POST, b.url(botUserID, "disable"), nil, mmclient.AttachNone)
}

func (b *Bots) EnableBot(ctx context.Context, botUserID string) (*Response, error) {
	return b.do(ctx, mmclient.POST, b.url(botUserID, "enable"), nil, mmclient.AttachNone)
}

// AssignBot transfers ownership of a bot to userID.
func (b *Bots) AssignBot(ctx context.Context, botUserID, userID string) (*Response, error) {
	return b.do(ctx, mmclient.POST, b.url(botUserID, "assign", userID), nil, mmclient.AttachNone)
}
