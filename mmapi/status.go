// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Status wraps the user status and custom status endpoints.
type Status struct{ resource }

func (s *Status) GetStatus(ctx context.Context, userID string) (*Response, error) {
	return s.do(ctx, mmclient.GET, s.url(userID, "status"), nil, mmclient.AttachNone)
}

// UpdateStatus sets the status of userID to one of "online", "away",
// "offline" or "dnd". dndEndTime is a Unix timestamp in seconds.
func (s *Status) UpdateStatus(ctx context.Context, userID, status string, dndEndTime mmclient.Opt[int64]) (*Response, error) {
	req := s.newJSONRequest()
	req.AddToJSON("user_id", userID)
	req.AddToJSON("status", status)
	mmclient.AddOpt(req, "dnd_end_time", dndEndTime)
	return s.do(ctx, mmclient.PUT, s.url(userID, "status"), req, mmclient.AttachBody)
}

func (s *Status) GetStatusesByIDs(ctx context.Context, userIDs []string) (*Response, error) {
	req := s.newJSONRequest()
	req.SetJSONBody(userIDs)
	return s.do(ctx, mmclient.POST, s.url("status", "ids"), req, mmclient.AttachBody)
}

// CustomStatus is a user's emoji and text status. ExpiresAt is RFC 3339.
type CustomStatus struct {
	Emoji     string
	Text      string
	Duration  mmclient.Opt[string]
	ExpiresAt mmclient.Opt[string]
}

func (c CustomStatus) addTo(req *mmclient.Request) {
	req.AddToJSON("emoji", c.Emoji)
	req.AddToJSON("text", c.Text)
	mmclient.AddOpt(req, "duration", c.Duration)
	mmclient.AddOpt(req, "expires_at", c.ExpiresAt)
}

func (s *Status) UpdateCustomStatus(ctx context.Context, userID string, status CustomStatus) (*Response, error) {
	req := s.newJSONRequest()
	status.addTo(req)
	return s.do(ctx, mmclient.PUT, s.url(userID, "status", "custom"), req, mmclient.AttachBody)
}

func (s *Status) UnsetCustomStatus(ctx context.Context, userID string) (*Response, error) {
	return s.do(ctx, mmclient.DEL, s.url(userID, "status", "custom"), nil, mmclient.AttachNone)
}

// RemoveRecentCustomStatus removes status from the recent custom statuses
// of userID.
func (s *Status) RemoveRecentCustomStatus(ctx context.Context, userID string, status CustomStatus) (*Response, error) {
	req := s.newJSONRequest()
	status.addTo(req)
	return s.do(ctx, mmclient.DEL, s.url(userID, "status", "custom", "recent"), req, mmclient.AttachBody)
}

// DeleteRecentCustomStatus is RemoveRecentCustomStatus for clients that
// cannot send a body with DELETE.
func (s *Status) DeleteRecentCustomStatus(ctx context.Context, userID string, status CustomStatus) (*Response, error) {
	req := s.newJSONRequest()
	status.addTo(req)
	return s.do(ctx, mmclient.POST, s.url(userID, "status", "custom", "recent", "delete"), req, mmclient.AttachBody)
}
