// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Reactions struct{ resource }

// CreateReaction reacts to postID with emojiName on behalf of userID, which
// must be the calling user.
func (r *Reactions) CreateReaction(ctx context.Context, userID, postID, emojiName string, createAt mmclient.Opt[int64]) (*Response, error) {
	req := r.newJSONRequest()
	req.AddToJSON("user_id", userID)
	req.AddToJSON("post_id", postID)
	req.AddToJSON("emoji_name", emojiName)
	mmclient.AddOpt(req, "create_at", createAt)
	return r.do(ctx, mmclient.POST, r.url(), req, mmclient.AttachBody)
}

func (r *Reactions) GetReactions(ctx context.Context, postID string) (*Response, error) {
	return r.do(ctx, mmclient.GET, r.rootURL("posts", postID, "reactions"), nil, mmclient.AttachNone)
}

func (r *Reactions) DeleteReaction(ctx context.Context, userID, postID, emojiName string) (*Response, error) {
	return r.do(ctx, mmclient.DEL, r.rootURL("users", userID, "posts", postID, "reactions", emojiName), nil, mmclient.AttachNone)
}
