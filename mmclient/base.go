// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-api-go/utils"
)

const DefaultUserAgent = "mattermost-api-go/1.0"

//go:generate mockgen -destination=mock_mmclient/mock_doer.go -package=mock_mmclient github.com/mattermost/mattermost-api-go/mmclient Doer

// Doer sends one HTTP request. *http.Client implements it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Base builds and dispatches API requests for one identity. It holds no
// per-request state, so a single Base can serve concurrent callers.
type Base struct {
	identity   Identity
	apiURL     string
	httpClient Doer
	userAgent  string
	log        utils.Logger
}

type Option func(*Base)

// WithHTTPClient sets the transport used for every request. Timeouts and
// proxies are configured there.
func WithHTTPClient(d Doer) Option {
	return func(b *Base) {
		b.httpClient = d
	}
}

func WithLogger(l utils.Logger) Option {
	return func(b *Base) {
		b.log = l
	}
}

func WithUserAgent(ua string) Option {
	return func(b *Base) {
		b.userAgent = ua
	}
}

// New stores the identity and derives the API prefix. It performs no I/O.
func New(token, serverURL string, opts ...Option) *Base {
	b := &Base{
		identity:   NewIdentity(token, serverURL),
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
		log:        utils.NewNopLogger(),
	}
	b.apiURL = b.identity.APIURL()
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Base) Identity() Identity { return b.identity }

func (b *Base) APIURL() string { return b.apiURL }

// URL joins path elements onto the API prefix.
func (b *Base) URL(elems ...string) string {
	return utils.JoinURL(b.apiURL, elems...)
}

// NewRequest returns fresh pending state for one call.
func (b *Base) NewRequest() *Request {
	return NewRequest(b.identity.Token)
}

// Reset returns r to the default state for this Base's token.
func (b *Base) Reset(r *Request) {
	r.Reset(b.identity.Token)
}

// Request sends one HTTP request to url built from req. It makes exactly one
// attempt. A non-2xx status yields both the Response and an
// *ApplicationError; a failure to complete the exchange yields a
// *TransportError. req is not modified.
func (b *Base) Request(ctx context.Context, url string, method Method, req *Request, attach Attach) (*Response, error) {
	if req == nil {
		req = b.NewRequest()
	}
	rq, err := b.buildHTTPRequest(ctx, url, method, req, attach)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s", method, url)
	}
	log := b.log.With("method", rq.Method, "url", url, req)

	rp, err := b.httpClient.Do(rq)
	if err != nil {
		if rp != nil {
			closeBody(rp)
		}
		log.WithError(err).Debugw("Request failed")
		return nil, &TransportError{Method: rq.Method, URL: url, Err: err}
	}

	resp, err := readResponse(rp)
	if err != nil {
		log.WithError(err).Debugw("Failed to read response")
		return nil, &TransportError{Method: rq.Method, URL: url, Err: err}
	}
	log.Debugw("Request completed", "status", resp.StatusCode)

	if !resp.OK() {
		return resp, newApplicationError(resp.StatusCode, resp.Body)
	}
	return resp, nil
}

func (b *Base) buildHTTPRequest(ctx context.Context, url string, method Method, req *Request, attach Attach) (*http.Request, error) {
	header := req.Header()
	target := url
	body := bodyTuple{}
	var err error

	isGET := method == GET
	if attach.Body() && isGET {
		target, err = buildURL(url, req.json)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case attach.File() && !isGET:
		var fields map[string]interface{}
		if attach.Body() {
			fields = req.json
		}
		body, err = buildMultipartBody(req.multipart, fields)
		if err != nil {
			return nil, err
		}
		// the boundary is only known now
		header.Set(HeaderContentType, body.contentType)

	case attach.Body() && !isGET:
		var v interface{} = req.json
		if raw, ok := req.JSONBody(); ok {
			v = raw
		}
		body, err = buildJSONBody(v)
		if err != nil {
			return nil, err
		}
		if header.Get(HeaderContentType) == "" {
			header.Set(HeaderContentType, body.contentType)
		}
	}

	if header.Get(HeaderUserAgent) == "" && b.userAgent != "" {
		header.Set(HeaderUserAgent, b.userAgent)
	}

	rq, err := http.NewRequestWithContext(ctx, method.HTTPMethod(), target, body.body)
	if err != nil {
		return nil, err
	}
	rq.Header = header
	if body.body != nil {
		rq.ContentLength = body.contentLength
	}
	return rq, nil
}
