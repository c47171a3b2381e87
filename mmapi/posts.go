// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Posts struct{ resource }

type PostCreate struct {
	ChannelID string
	Message   mmclient.Opt[string]
	RootID    mmclient.Opt[string]
	FileIDs   mmclient.Opt[[]string]
	Props     mmclient.Opt[map[string]interface{}]
	Metadata  mmclient.Opt[map[string]interface{}]
}

// CreatePost creates a post in a channel. setOnline controls whether the
// author's status is set to online.
func (p *Posts) CreatePost(ctx context.Context, post PostCreate, setOnline mmclient.Opt[bool]) (*Response, error) {
	req := p.newJSONRequest()
	req.AddToJSON("channel_id", post.ChannelID)
	mmclient.AddOpt(req, "message", post.Message)
	mmclient.AddOpt(req, "root_id", post.RootID)
	mmclient.AddOpt(req, "file_ids", post.FileIDs)
	mmclient.AddOpt(req, "props", post.Props)
	mmclient.AddOpt(req, "metadata", post.Metadata)

	query := url.Values{}
	if v, ok := setOnline.Get(); ok {
		query.Set("set_online", strconv.FormatBool(v))
	}
	return p.do(ctx, mmclient.POST, withQuery(p.url(), query), req, mmclient.AttachBody)
}

// CreateEphemeralPost posts a message only userID can see, which is gone
// after a reload. Requires create_post_ephemeral.
func (p *Posts) CreateEphemeralPost(ctx context.Context, userID string, post *model.Post) (*Response, error) {
	req := p.newJSONRequest()
	req.AddToJSON("user_id", userID)
	req.AddToJSON("post", post)
	return p.do(ctx, mmclient.POST, p.url("ephemeral"), req, mmclient.AttachBody)
}

func (p *Posts) GetPost(ctx context.Context, postID string, includeDeleted mmclient.Opt[bool]) (*Response, error) {
	req := p.newJSONRequest()
	mmclient.AddOpt(req, "include_deleted", includeDeleted)
	return p.do(ctx, mmclient.GET, p.url(postID), req, mmclient.AttachBody)
}

// DeletePost soft deletes a post and its replies.
func (p *Posts) DeletePost(ctx context.Context, postID string) (*Response, error) {
	return p.do(ctx, mmclient.DEL, p.url(postID), nil, mmclient.AttachNone)
}

type PostUpdate struct {
	IsPinned     mmclient.Opt[bool]
	Message      mmclient.Opt[string]
	FileIDs      mmclient.Opt[[]string]
	HasReactions mmclient.Opt[bool]
	Props        mmclient.Opt[map[string]interface{}]
}

func (u PostUpdate) addTo(req *mmclient.Request) {
	mmclient.AddOpt(req, "is_pinned", u.IsPinned)
	mmclient.AddOpt(req, "message", u.Message)
	mmclient.AddOpt(req, "file_ids", u.FileIDs)
	mmclient.AddOpt(req, "has_reactions", u.HasReactions)
	mmclient.AddOpt(req, "props", u.Props)
}

// UpdatePost replaces a post. Fields left unset are cleared on the server,
// see PatchPost to update some of them only.
func (p *Posts) UpdatePost(ctx context.Context, postID string, update PostUpdate) (*Response, error) {
	req := p.newJSONRequest()
	req.AddToJSON("id", postID)
	update.addTo(req)
	return p.do(ctx, mmclient.PUT, p.url(postID), req, mmclient.AttachBody)
}

// SetUnread marks the channel of postID unread for userID, starting at that
// post.
func (p *Posts) SetUnread(ctx context.Context, userID, postID string) (*Response, error) {
	return p.do(ctx, mmclient.POST, p.rootURL("users", userID, "posts", postID, "set_unread"), nil, mmclient.AttachNone)
}

func (p *Posts) PatchPost(ctx context.Context, postID string, patch PostUpdate) (*Response, error) {
	req := p.newJSONRequest()
	patch.addTo(req)
	return p.do(ctx, mmclient.PUT, p.url(postID, "patch"), req, mmclient.AttachBody)
}

type ThreadQuery struct {
	PerPage                  mmclient.Opt[int]
	FromPost                 mmclient.Opt[string]
	FromCreateAt             mmclient.Opt[int64]
	Direction                mmclient.Opt[string]
	SkipFetchThreads         mmclient.Opt[bool]
	CollapsedThreads         mmclient.Opt[bool]
	CollapsedThreadsExtended mmclient.Opt[bool]
}

// GetThread gets a post and the rest of its thread.
func (p *Posts) GetThread(ctx context.Context, postID string, query ThreadQuery) (*Response, error) {
	req := p.newJSONRequest()
	mmclient.AddOpt(req, "perPage", query.PerPage)
	mmclient.AddOpt(req, "fromPost", query.FromPost)
	mmclient.AddOpt(req, "fromCreateAt", query.FromCreateAt)
	mmclient.AddOpt(req, "direction", query.Direction)
	mmclient.AddOpt(req, "skipFetchThreads", query.SkipFetchThreads)
	mmclient.AddOpt(req, "collapsedThreads", query.CollapsedThreads)
	mmclient.AddOpt(req, "collapsedThreadsExtended", query.CollapsedThreadsExtended)
	return p.do(ctx, mmclient.GET, p.url(postID, "thread"), req, mmclient.AttachBody)
}

func (p *Posts) GetPostsForChannel(ctx context.Context, channelID string, paging Paging, since mmclient.Opt[int64]) (*Response, error) {
	req := p.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "since", since)
	return p.do(ctx, mmclient.GET, p.rootURL("channels", channelID, "posts"), req, mmclient.AttachBody)
}
