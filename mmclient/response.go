// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost/server/public/model"
)

// Response is a completed API call. Body holds the raw payload, which is
// JSON for most endpoints and binary for image and file downloads.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Meta carries the Mattermost response metadata: request ID, etag and
	// server version.
	Meta *model.Response
}

func readResponse(rp *http.Response) (*Response, error) {
	defer closeBody(rp)

	data := []byte{}
	if rp.Body != nil {
		var err error
		data, err = io.ReadAll(rp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read body")
		}
	}
	return &Response{
		StatusCode: rp.StatusCode,
		Header:     rp.Header,
		Body:       data,
		Meta:       model.BuildResponse(rp),
	}, nil
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// DecodeAs decodes the JSON body of r into a new T.
func DecodeAs[T any](r *Response) (T, error) {
	var out T
	if r == nil {
		return out, errors.New("no response to decode")
	}
	err := r.Decode(&out)
	return out, err
}

func closeBody(r *http.Response) {
	if r.Body != nil {
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}
}
