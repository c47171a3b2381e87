// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"net/url"

	"github.com/mattermost/mattermost-api-go/mmclient"
	"github.com/mattermost/mattermost-api-go/utils"
)

type Response = mmclient.Response

// resource is what every wrapper embeds: the shared dispatcher and the
// wrapper's URL prefix.
type resource struct {
	base   *mmclient.Base
	apiURL string
}

func newResource(base *mmclient.Base, elems ...string) resource {
	return resource{
		base:   base,
		apiURL: base.URL(elems...),
	}
}

// url appends escaped path segments to the resource prefix.
func (r resource) url(segments ...string) string {
	return utils.JoinURL(r.apiURL, escape(segments)...)
}

// rootURL appends escaped path segments to the API prefix, for endpoints
// filed under another resource, e.g. /users/{id}/convert_to_bot.
func (r resource) rootURL(segments ...string) string {
	return r.base.URL(escape(segments)...)
}

func (r resource) newRequest() *mmclient.Request {
	return r.base.NewRequest()
}

// newJSONRequest is newRequest with the JSON content type already set.
func (r resource) newJSONRequest() *mmclient.Request {
	req := r.base.NewRequest()
	req.AddJSONHeader()
	return req
}

func (r resource) newMultipartRequest() *mmclient.Request {
	req := r.base.NewRequest()
	req.AddMultipartHeader()
	return req
}

func (r resource) do(ctx context.Context, method mmclient.Method, u string, req *mmclient.Request, attach mmclient.Attach) (*Response, error) {
	if req == nil {
		req = r.newRequest()
	}
	return r.base.Request(ctx, u, method, req, attach)
}

func escape(segments []string) []string {
	out := make([]string, len(segments))
	for i, s := range segments {
		out[i] = url.PathEscape(s)
	}
	return out
}

// Paging is the page/per_page pair most list endpoints accept.
type Paging struct {
	Page    mmclient.Opt[int]
	PerPage mmclient.Opt[int]
}

func (p Paging) addTo(req *mmclient.Request) {
	mmclient.AddOpt(req, "page", p.Page)
	mmclient.AddOpt(req, "per_page", p.PerPage)
}

// Page is a convenience constructor for Paging.
func Page(page, perPage int) Paging {
	return Paging{
		Page:    mmclient.Some(page),
		PerPage: mmclient.Some(perPage),
	}
}

// withQuery appends query parameters to u, for verbs whose attached fields
// go in the body.
func withQuery(u string, query url.Values) string {
	if len(query) == 0 {
		return u
	}
	return u + "?" + query.Encode()
}
