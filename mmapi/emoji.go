// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Emoji struct{ resource }

// CreateCustomEmoji uploads image as a custom emoji called name, owned by
// creatorID.
func (e *Emoji) CreateCustomEmoji(ctx context.Context, name, creatorID, filename string, image io.Reader) (*Response, error) {
	data, err := json.Marshal(map[string]string{
		"name":       name,
		"creator_id": creatorID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode emoji")
	}

	req := e.newMultipartRequest()
	req.AddToMultipartFormData("image", mmclient.File{Name: filename, Content: image})
	req.AddToMultipartFormData("emoji", string(data))
	return e.do(ctx, mmclient.POST, e.url(), req, mmclient.AttachFile)
}

// GetCustomEmojis lists custom emoji. sort may be "name"; the default is
// creation order.
func (e *Emoji) GetCustomEmojis(ctx context.Context, paging Paging, sort mmclient.Opt[string]) (*Response, error) {
	req := e.newJSONRequest()
	paging.addTo(req)
	mmclient.AddOpt(req, "sort", sort)
	return e.do(ctx, mmclient.GET, e.url(), req, mmclient.AttachBody)
}

func (e *Emoji) GetCustomEmoji(ctx context.Context, emojiID string) (*Response, error) {
	return e.do(ctx, mmclient.GET, e.url(emojiID), nil, mmclient.AttachNone)
}

func (e *Emoji) GetCustomEmojiByName(ctx context.Context, name string) (*Response, error) {
	return e.do(ctx, mmclient.GET, e.url("name", name), nil, mmclient.AttachNone)
}

func (e *Emoji) DeleteCustomEmoji(ctx context.Context, emojiID string) (*Response, error) {
	return e.do(ctx, mmclient.DEL, e.url(emojiID), nil, mmclient.AttachNone)
}
