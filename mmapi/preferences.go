// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Preferences wraps /users/{user_id}/preferences.
type Preferences struct{ resource }

func (p *Preferences) GetPreferences(ctx context.Context, userID string) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url(userID, "preferences"), nil, mmclient.AttachNone)
}

// SavePreferences creates or updates the given preferences of userID.
func (p *Preferences) SavePreferences(ctx context.Context, userID string, preferences model.Preferences) (*Response, error) {
	req := p.newJSONRequest()
	req.SetJSONBody(preferences)
	return p.do(ctx, mmclient.PUT, p.url(userID, "preferences"), req, mmclient.AttachBody)
}

func (p *Preferences) DeletePreferences(ctx context.Context, userID string, preferences model.Preferences) (*Response, error) {
	req := p.newJSONRequest()
	req.SetJSONBody(preferences)
	return p.do(ctx, mmclient.POST, p.url(userID, "preferences", "delete"), req, mmclient.AttachBody)
}

func (p *Preferences) GetPreferencesByCategory(ctx context.Context, userID, category string) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url(userID, "preferences", category), nil, mmclient.AttachNone)
}

func (p *Preferences) GetPreference(ctx context.Context, userID, category, name string) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url(userID, "preferences", category, "name", name), nil, mmclient.AttachNone)
}
