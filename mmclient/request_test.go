// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestReset(t *testing.T) {
	r := NewRequest("T")
	r.AddJSONHeader()
	r.AddHeader("X-Extra", "1")
	r.AddToJSON("username", "bob")
	r.AddToMultipartFormData("image", []byte("png"))

	for i := 0; i < 3; i++ {
		r.Reset("T")
		require.Equal(t, http.Header{"Authorization": []string{"Bearer T"}}, r.Header())
		require.Empty(t, r.JSON())
		require.Empty(t, r.Multipart())
	}
}

func TestRequestAddToJSON(t *testing.T) {
	t.Run("distinct keys", func(t *testing.T) {
		r := NewRequest("T")
		r.AddToJSON("username", "bob")
		r.AddToJSON("page", 2)
		r.AddToJSON("include_deleted", false)
		r.AddToJSON("user_ids", []string{"a", "b"})
		r.AddToJSON("props", map[string]interface{}{"k": "v"})
		r.AddToJSON("nothing", nil)

		expected := map[string]interface{}{
			"username":        "bob",
			"page":            2,
			"include_deleted": false,
			"user_ids":        []string{"a", "b"},
			"props":           map[string]interface{}{"k": "v"},
			"nothing":         nil,
		}
		if diff := cmp.Diff(expected, r.JSON()); diff != "" {
			t.Errorf("unexpected fields (-want +got):\n%s", diff)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		r := NewRequest("T")
		r.AddToJSON("username", "bob")
		r.AddToJSON("username", "alice")
		assert.Equal(t, map[string]interface{}{"username": "alice"}, r.JSON())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		r := NewRequest("T")
		r.AddToJSON("a", 1)
		fields := r.JSON()
		fields["b"] = 2
		r.Header().Set("X-Leak", "1")
		assert.Equal(t, map[string]interface{}{"a": 1}, r.JSON())
		assert.Empty(t, r.Header().Get("X-Leak"))
	})
}

func TestRequestAddToMultipartFormData(t *testing.T) {
	r := NewRequest("T")
	r.AddToMultipartFormData("image", []byte("one"))
	r.AddToMultipartFormData("image", []byte("two"))
	r.AddToMultipartFormData("channel_id", "c1")
	assert.Equal(t, map[string]interface{}{
		"image":      []byte("two"),
		"channel_id": "c1",
	}, r.Multipart())
	assert.Empty(t, r.JSON())
}

func TestRequestContentTypeLastWriteWins(t *testing.T) {
	r := NewRequest("T")
	r.AddJSONHeader()
	r.AddMultipartHeader()
	assert.Equal(t, ContentTypeMultipart, r.Header().Get(HeaderContentType))

	r.AddJSONHeader()
	assert.Equal(t, ContentTypeJSON, r.Header().Get(HeaderContentType))
	assert.Len(t, r.Header(), 2)
}

func TestOpt(t *testing.T) {
	r := NewRequest("T")
	AddOpt(r, "display_name", Some("Bob"))
	AddOpt(r, "description", None[string]())
	AddOpt(r, "page", Some(0))
	AddOpt(r, "only_orphaned", Some(false))
	var missing *bool
	AddOpt(r, "include_deleted", FromPtr(missing))
	present := true
	AddOpt(r, "active", FromPtr(&present))
	AddOptMultipart(r, "force", Some("true"))
	AddOptMultipart(r, "skip", None[string]())

	assert.Equal(t, map[string]interface{}{
		"display_name":  "Bob",
		"page":          0,
		"only_orphaned": false,
		"active":        true,
	}, r.JSON())
	assert.Equal(t, map[string]interface{}{"force": "true"}, r.Multipart())

	v, ok := None[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.True(t, Some(0).IsSet())
}

func TestRequestLoggable(t *testing.T) {
	r := NewRequest("secret-token")
	assert.Empty(t, r.Loggable())

	r.AddToJSON("username", "bob")
	r.AddToJSON("description", "x")
	r.AddToMultipartFormData("image", []byte("png"))
	assert.Equal(t, []interface{}{
		"json_fields", "description,username",
		"multipart_fields", "image",
	}, r.Loggable())
}

func TestRequestSetJSONBody(t *testing.T) {
	r := NewRequest("T")
	_, ok := r.JSONBody()
	assert.False(t, ok)

	r.SetJSONBody([]string{"u1", "u2"})
	body, ok := r.JSONBody()
	require.True(t, ok)
	assert.Equal(t, []string{"u1", "u2"}, body)
	assert.Equal(t, []interface{}{"json_body", "[]string"}, r.Loggable())

	r.Reset("T")
	_, ok = r.JSONBody()
	assert.False(t, ok)
}
