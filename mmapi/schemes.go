// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Schemes wraps /schemes, the permission schemes applied to teams and
// channels.
type Schemes struct{ resource }

// GetSchemes lists schemes. scope is "team" or "channel"; all schemes are
// returned when it is unset.
func (s *Schemes) GetSchemes(ctx context.Context, scope mmclient.Opt[string], paging Paging) (*Response, error) {
	req := s.newJSONRequest()
	mmclient.AddOpt(req, "scope", scope)
	paging.addTo(req)
	return s.do(ctx, mmclient.GET, s.url(), req, mmclient.AttachBody)
}

func (s *Schemes) CreateScheme(ctx context.Context, name, scope string, description mmclient.Opt[string]) (*Response, error) {
	req := s.newJSONRequest()
	req.AddToJSON("name", name)
	req.AddToJSON("scope", scope)
	mmclient.AddOpt(req, "description", description)
	return s.do(ctx, mmclient.POST, s.url(), req, mmclient.AttachBody)
}

func (s *Schemes) GetScheme(ctx context.Context, schemeID string) (*Response, error) {
	return s.do(ctx, mmclient.GET, s.url(schemeID), nil, mmclient.AttachNone)
}

func (s *Schemes) DeleteScheme(ctx context.Context, schemeID string) (*Response, error) {
	return s.do(ctx, mmclient.DEL, s.url(schemeID), nil, mmclient.AttachNone)
}

func (s *Schemes) PatchScheme(ctx context.Context, schemeID string, name, description mmclient.Opt[string]) (*Response, error) {
	req := s.newJSONRequest()
	mmclient.AddOpt(req, "name", name)
	mmclient.AddOpt(req, "description", description)
	return s.do(ctx, mmclient.PUT, s.url(schemeID, "patch"), req, mmclient.AttachBody)
}

// GetSchemeTeams gets the teams using a team scheme.
func (s *Schemes) GetSchemeTeams(ctx context.Context, schemeID string, paging Paging) (*Response, error) {
	req := s.newJSONRequest()
	paging.addTo(req)
	return s.do(ctx, mmclient.GET, s.url(schemeID, "teams"), req, mmclient.AttachBody)
}

// GetSchemeChannels gets the channels using a channel scheme.
func (s *Schemes) GetSchemeChannels(ctx context.Context, schemeID string, paging Paging) (*Response, error) {
	req := s.newJSONRequest()
	paging.addTo(req)
	return s.do(ctx, mmclient.GET, s.url(schemeID, "channels"), req, mmclient.AttachBody)
}
