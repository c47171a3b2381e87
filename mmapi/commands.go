// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Commands wraps the slash command endpoints.
type Commands struct{ resource }

// CreateCommand creates a custom slash command for a team. method is "P"
// for POST or "G" for GET.
func (c *Commands) CreateCommand(ctx context.Context, teamID, method, trigger, callbackURL string) (*Response, error) {
	req := c.newJSONRequest()
	req.AddToJSON("team_id", teamID)
	req.AddToJSON("method", method)
	req.AddToJSON("trigger", trigger)
	req.AddToJSON("url", callbackURL)
	return c.do(ctx, mmclient.POST, c.url(), req, mmclient.AttachBody)
}

// ListCommands lists the commands of a team. With customOnly set only
// custom commands are returned, otherwise system commands are included.
func (c *Commands) ListCommands(ctx context.Context, teamID string, customOnly mmclient.Opt[bool]) (*Response, error) {
	req := c.newJSONRequest()
	req.AddToJSON("team_id", teamID)
	mmclient.AddOpt(req, "custom_only", customOnly)
	return c.do(ctx, mmclient.GET, c.url(), req, mmclient.AttachBody)
}

func (c *Commands) ListAutocompleteCommands(ctx context.Context, teamID string) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.rootURL("teams", teamID, "commands", "autocomplete"), nil, mmclient.AttachNone)
}

func (c *Commands) ListCommandAutocompleteSuggestions(ctx context.Context, teamID string, userInput mmclient.Opt[string]) (*Response, error) {
	req := c.newJSONRequest()
	mmclient.AddOpt(req, "user_input", userInput)
	return c.do(ctx, mmclient.GET, c.rootURL("teams", teamID, "commands", "autocomplete_suggestions"), req, mmclient.AttachBody)
}

func (c *Commands) GetCommand(ctx context.Context, commandID string) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url(commandID), nil, mmclient.AttachNone)
}

// CommandUpdate carries the fields of a command to overwrite.
type CommandUpdate struct {
	ID               mmclient.Opt[string]
	Token            mmclient.Opt[string]
	CreateAt         mmclient.Opt[int64]
	UpdateAt         mmclient.Opt[int64]
	DeleteAt         mmclient.Opt[int64]
	CreatorID        mmclient.Opt[string]
	TeamID           mmclient.Opt[string]
	Trigger          mmclient.Opt[string]
	Method           mmclient.Opt[string]
	Username         mmclient.Opt[string]
	IconURL          mmclient.Opt[string]
	AutoComplete     mmclient.Opt[bool]
	AutoCompleteDesc mmclient.Opt[string]
	AutoCompleteHint mmclient.Opt[string]
	DisplayName      mmclient.Opt[string]
	Description      mmclient.Opt[string]
	URL              mmclient.Opt[string]
}

func (c *Commands) UpdateCommand(ctx context.Context, commandID string, update CommandUpdate) (*Response, error) {
	req := c.newJSONRequest()
	mmclient.AddOpt(req, "id", update.ID)
	mmclient.AddOpt(req, "token", update.Token)
	mmclient.AddOpt(req, "create_at", update.CreateAt)
	mmclient.AddOpt(req, "update_at", update.UpdateAt)
	mmclient.AddOpt(req, "delete_at", update.DeleteAt)
	mmclient.AddOpt(req, "creator_id", update.CreatorID)
	mmclient.AddOpt(req, "team_id", update.TeamID)
	mmclient.AddOpt(req, "trigger", update.Trigger)
	mmclient.AddOpt(req, "method", update.Method)
	mmclient.AddOpt(req, "username", update.Username)
	mmclient.AddOpt(req, "icon_url", update.IconURL)
	mmclient.AddOpt(req, "auto_complete", update.AutoComplete)
	mmclient.AddOpt(req, "auto_complete_desc", update.AutoCompleteDesc)
	mmclient.AddOpt(req, "auto_complete_hint", update.AutoCompleteHint)
	mmclient.AddOpt(req, "display_name", update.DisplayName)
	mmclient.AddOpt(req, "description", update.Description)
	mmclient.AddOpt(req, "url", update.URL)
	return c.do(ctx, mmclient.PUT, c.url(commandID), req, mmclient.AttachBody)
}

func (c *Commands) DeleteCommand(ctx context.Context, commandID string) (*Response, error) {
	return c.do(ctx, mmclient.DEL, c.url(commandID), nil, mmclient.AttachNone)
}

// MoveCommand moves a command to another team.
func (c *Commands) MoveCommand(ctx context.Context, commandID, teamID string) (*Response, error) {
	req := c.newJSONRequest()
	req.AddToJSON("team_id", teamID)
	return c.do(ctx, mmclient.PUT, c.url(commandID, "move"), req, mmclient.AttachBody)
}

func (c *Commands) RegenCommandToken(ctx context.Context, commandID string) (*Response, error) {
	return c.do(ctx, mmclient.PUT, c.url(commandID, "regen_token"), nil, mmclient.AttachNone)
}

// ExecuteCommand runs a slash command, e.g. "/echo hi", in a channel.
func (c *Commands) ExecuteCommand(ctx context.Context, channelID, command string) (*Response, error) {
	req := c.newJSONRequest()
	req.AddToJSON("channel_id", channelID)
	req.AddToJSON("command", command)
	return c.do(ctx, mmclient.POST, c.url("execute"), req, mmclient.AttachBody)
}
