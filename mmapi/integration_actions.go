// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// IntegrationActions wraps /actions/dialogs.
type IntegrationActions struct{ resource }

// OpenDialog opens an interactive dialog. triggerID comes from the slash
// command or interactive message that started the flow, and submissions
// are posted to callbackURL.
func (a *IntegrationActions) OpenDialog(ctx context.Context, triggerID, callbackURL string, dialog model.Dialog) (*Response, error) {
	req := a.newJSONRequest()
	req.AddToJSON("trigger_id", triggerID)
	req.AddToJSON("url", callbackURL)
	req.AddToJSON("dialog", dialog)
	return a.do(ctx, mmclient.POST, a.url("open"), req, mmclient.AttachBody)
}

// SubmitDialog submits a dialog on behalf of the user, as the webapp does.
func (a *IntegrationActions) SubmitDialog(ctx context.Context, submission model.SubmitDialogRequest) (*Response, error) {
	req := a.newJSONRequest()
	req.AddToJSON("type", submission.Type)
	req.AddToJSON("url", submission.URL)
	req.AddToJSON("callback_id", submission.CallbackId)
	req.AddToJSON("state", submission.State)
	req.AddToJSON("user_id", submission.UserId)
	req.AddToJSON("channel_id", submission.ChannelId)
	req.AddToJSON("team_id", submission.TeamId)
	req.AddToJSON("submission", submission.Submission)
	req.AddToJSON("cancelled", submission.Cancelled)
	return a.do(ctx, mmclient.POST, a.url("submit"), req, mmclient.AttachBody)
}
