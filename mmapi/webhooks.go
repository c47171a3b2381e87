// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Webhooks wraps /hooks/incoming and /hooks/outgoing.
type Webhooks struct{ resource }

type IncomingWebhook struct {
	ChannelID   string
	UserID      mmclient.Opt[string]
	DisplayName mmclient.Opt[string]
	Description mmclient.Opt[string]
	Username    mmclient.Opt[string]
	IconURL     mmclient.Opt[string]
}

func (h IncomingWebhook) addTo(req *mmclient.Request) {
	req.AddToJSON("channel_id", h.ChannelID)
	mmclient.AddOpt(req, "user_id", h.UserID)
	mmclient.AddOpt(req, "display_name", h.DisplayName)
	mmclient.AddOpt(req, "description", h.Description)
	mmclient.AddOpt(req, "username", h.Username)
	mmclient.AddOpt(req, "icon_url", h.IconURL)
}

func (w *Webhooks) CreateIncomingWebhook(ctx context.Context, hook IncomingWebhook) (*Response, error) {
	req := w.newJSONRequest()
	hook.addTo(req)
	return w.do(ctx, mmclient.POST, w.url("incoming"), req, mmclient.AttachBody)
}

func (w *Webhooks) GetIncomingWebhooks(ctx context.Context, paging Paging, teamID mmclient.Opt[string]) (*Response, error) {
	req := w.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "team_id", teamID)
	return w.do(ctx, mmclient.GET, w.url("incoming"), req, mmclient.AttachBody)
}

func (w *Webhooks) GetIncomingWebhook(ctx context.Context, hookID string) (*Response, error) {
	return w.do(ctx, mmclient.GET, w.url("incoming", hookID), nil, mmclient.AttachNone)
}

func (w *Webhooks) DeleteIncomingWebhook(ctx context.Context, hookID string) (*Response, error) {
	return w.do(ctx, mmclient.DEL, w.url("incoming", hookID), nil, mmclient.AttachNone)
}

func (w *Webhooks) UpdateIncomingWebhook(ctx context.Context, hookID string, hook IncomingWebhook) (*Response, error) {
	req := w.newJSONRequest()
	req.AddToJSON("id", hookID)
	hook.addTo(req)
	return w.do(ctx, mmclient.PUT, w.url("incoming", hookID), req, mmclient.AttachBody)
}

// OutgoingWebhook is an outgoing webhook. It fires either on the trigger
// words or on every post of ChannelID. TriggerWhen is 0 to match the first
// word of a post exactly, 1 to match its start.
type OutgoingWebhook struct {
	TeamID       string
	ChannelID    mmclient.Opt[string]
	CreatorID    mmclient.Opt[string]
	Description  mmclient.Opt[string]
	DisplayName  string
	TriggerWords []string
	TriggerWhen  mmclient.Opt[int]
	CallbackURLs []string
	ContentType  mmclient.Opt[string]
}

func (h OutgoingWebhook) addTo(req *mmclient.Request) {
	req.AddToJSON("team_id", h.TeamID)
	mmclient.AddOpt(req, "channel_id", h.ChannelID)
	mmclient.AddOpt(req, "creator_id", h.CreatorID)
	mmclient.AddOpt(req, "description", h.Description)
	req.AddToJSON("display_name", h.DisplayName)
	req.AddToJSON("trigger_words", h.TriggerWords)
	mmclient.AddOpt(req, "trigger_when", h.TriggerWhen)
	req.AddToJSON("callback_urls", h.CallbackURLs)
	mmclient.AddOpt(req, "content_type", h.ContentType)
}

func (w *Webhooks) CreateOutgoingWebhook(ctx context.Context, hook OutgoingWebhook) (*Response, error) {
	req := w.newJSONRequest()
	hook.addTo(req)
	return w.do(ctx, mmclient.POST, w.url("outgoing"), req, mmclient.AttachBody)
}

func (w *Webhooks) GetOutgoingWebhooks(ctx context.Context, paging Paging, teamID, channelID mmclient.Opt[string]) (*Response, error) {
	req := w.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "team_id", teamID)
	mmclient.AddOpt(req, "channel_id", channelID)
	return w.do(ctx, mmclient.GET, w.url("outgoing"), req, mmclient.AttachBody)
}

func (w *Webhooks) GetOutgoingWebhook(ctx context.Context, hookID string) (*Response, error) {
	return w.do(ctx, mmclient.GET, w.url("outgoing", hookID), nil, mmclient.AttachNone)
}

func (w *Webhooks) DeleteOutgoingWebhook(ctx context.Context, hookID string) (*Response, error) {
	return w.do(ctx, mmclient.DEL, w.url("outgoing", hookID), nil, mmclient.AttachNone)
}

func (w *Webhooks) UpdateOutgoingWebhook(ctx context.Context, hookID, channelID, displayName, description string) (*Response, error) {
	req := w.newJSONRequest()
	req.AddToJSON("id", hookID)
	req.AddToJSON("channel_id", channelID)
	req.AddToJSON("display_name", displayName)
	req.AddToJSON("description", description)
	return w.do(ctx, mmclient.PUT, w.url("outgoing", hookID), req, mmclient.AttachBody)
}

func (w *Webhooks) RegenOutgoingToken(ctx context.Context, hookID string) (*Response, error) {
	return w.do(ctx, mmclient.POST, w.url("outgoing", hookID, "regen_token"), nil, mmclient.AttachNone)
}
