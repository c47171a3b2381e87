// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"fmt"
	"io"
	"net/http"

	"github.com/mattermost/mattermost-api-go/utils"
)

const (
	HeaderAuth        = "Authorization"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"

	AuthTypeBearer = "Bearer"

	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// File is a multipart value sent as a file part. Name is the filename
// reported to the server.
type File struct {
	Name    string
	Content io.Reader
}

// Request is the pending state of one API call: headers, JSON fields and
// multipart fields. A Request is owned by the call that builds it; it is not
// safe to share between goroutines.
type Request struct {
	header    http.Header
	json      map[string]interface{}
	multipart map[string]interface{}

	// body replaces the JSON fields when set.
	body    interface{}
	hasBody bool
}

// NewRequest returns a Request in the default state for token.
func NewRequest(token string) *Request {
	r := &Request{}
	r.Reset(token)
	return r
}

// Reset drops all accumulated fields and leaves exactly one header, the
// bearer authorization derived from token.
func (r *Request) Reset(token string) {
	r.header = http.Header{}
	r.header.Set(HeaderAuth, AuthTypeBearer+" "+token)
	r.json = map[string]interface{}{}
	r.multipart = map[string]interface{}{}
	r.body = nil
	r.hasBody = false
}

func (r *Request) AddHeader(name, value string) {
	r.header.Set(name, value)
}

func (r *Request) AddJSONHeader() {
	r.header.Set(HeaderContentType, ContentTypeJSON)
}

func (r *Request) AddMultipartHeader() {
	r.header.Set(HeaderContentType, ContentTypeMultipart)
}

// AddToJSON sets key in the JSON fields, overwriting any previous value.
// value must be JSON-encodable; it is not checked here.
func (r *Request) AddToJSON(key string, value interface{}) {
	r.json[key] = value
}

// SetJSONBody makes v the whole JSON body, for endpoints that take an array
// or another non-object value. It takes precedence over AddToJSON fields for
// every verb except GET.
func (r *Request) SetJSONBody(v interface{}) {
	r.body = v
	r.hasBody = true
}

// AddToMultipartFormData sets key in the multipart fields, overwriting any
// previous value. Supported values are string, []byte, io.Reader and File.
func (r *Request) AddToMultipartFormData(key string, value interface{}) {
	r.multipart[key] = value
}

// Header returns a copy of the pending headers.
func (r *Request) Header() http.Header {
	return r.header.Clone()
}

// JSON returns a copy of the pending JSON fields.
func (r *Request) JSON() map[string]interface{} {
	return copyFields(r.json)
}

// JSONBody returns the value set with SetJSONBody, if any.
func (r *Request) JSONBody() (interface{}, bool) {
	return r.body, r.hasBody
}

// Multipart returns a copy of the pending multipart fields.
func (r *Request) Multipart() map[string]interface{} {
	return copyFields(r.multipart)
}

func (r *Request) Loggable() []interface{} {
	props := []interface{}{}
	if len(r.json) > 0 {
		props = append(props, "json_fields", utils.LogKeys(r.json))
	}
	if r.hasBody {
		props = append(props, "json_body", fmt.Sprintf("%T", r.body))
	}
	if len(r.multipart) > 0 {
		props = append(props, "multipart_fields", utils.LogKeys(r.multipart))
	}
	return props
}

func copyFields(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
