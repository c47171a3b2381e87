// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Threads wraps the collapsed reply threads a user follows.
type Threads struct{ resource }

type ThreadsQuery struct {
	Since       mmclient.Opt[int64]
	Deleted     mmclient.Opt[bool]
	Extended    mmclient.Opt[bool]
	Page        mmclient.Opt[int]
	PageSize    mmclient.Opt[int]
	TotalsOnly  mmclient.Opt[bool]
	ThreadsOnly mmclient.Opt[bool]
}

func (t *Threads) GetThreads(ctx context.Context, userID, teamID string, query ThreadsQuery) (*Response, error) {
	req := t.newJSONRequest()
	mmclient.AddOpt(req, "since", query.Since)
	mmclient.AddOpt(req, "deleted", query.Deleted)
	mmclient.AddOpt(req, "extended", query.Extended)
	mmclient.AddOpt(req, "page", query.Page)
	mmclient.AddOpt(req, "pageSize", query.PageSize)
	mmclient.AddOpt(req, "totalsOnly", query.TotalsOnly)
	mmclient.AddOpt(req, "threadsOnly", query.ThreadsOnly)
	return t.do(ctx, mmclient.GET, t.url(userID, "teams", teamID, "threads"), req, mmclient.AttachBody)
}

// GetThreadMentionCounts gets the unread mention counts of the followed
// threads, keyed by channel ID.
func (t *Threads) GetThreadMentionCounts(ctx context.Context, userID, teamID string) (*Response, error) {
	return t.do(ctx, mmclient.GET, t.url(userID, "teams", teamID, "threads", "mention_counts"), nil, mmclient.AttachNone)
}
