// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import "net/http"

// Method is the request type of an API call. DEL is the client-side name of
// the DELETE verb.
type Method string

const (
	GET   Method = "GET"
	POST  Method = "POST"
	PUT   Method = "PUT"
	PATCH Method = "PATCH"
	DEL   Method = "DEL"
)

// HTTPMethod returns the verb sent on the wire. Unknown methods are passed
// through unchanged and left for the server to reject.
func (m Method) HTTPMethod() string {
	switch m {
	case GET:
		return http.MethodGet
	case POST:
		return http.MethodPost
	case PUT:
		return http.MethodPut
	case PATCH:
		return http.MethodPatch
	case DEL:
		return http.MethodDelete
	default:
		return string(m)
	}
}

// Attach selects which accumulated fields of a Request are put on the wire.
type Attach int

const (
	// AttachNone sends headers only.
	AttachNone Attach = 0
	// AttachBody sends the JSON fields: as query parameters for GET, as the
	// JSON payload otherwise.
	AttachBody Attach = 1 << iota
	// AttachFile sends the multipart fields as multipart/form-data. It is
	// ignored for GET, which never carries a body.
	AttachFile
)

func (a Attach) Body() bool { return a&AttachBody != 0 }
func (a Attach) File() bool { return a&AttachFile != 0 }
