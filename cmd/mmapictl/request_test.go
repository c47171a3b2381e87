// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

func TestParseMethod(t *testing.T) {
	for in, expected := range map[string]mmclient.Method{
		"get":    mmclient.GET,
		"POST":   mmclient.POST,
		"put":    mmclient.PUT,
		"Patch":  mmclient.PATCH,
		"del":    mmclient.DEL,
		"delete": mmclient.DEL,
	} {
		m, err := parseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, m, in)
	}

	_, err := parseMethod("HEAD")
	require.Error(t, err)
}

func TestParseItems(t *testing.T) {
	items, err := parseItems([]string{
		"message=hello=world",
		"per_page:=10",
		"props:={\"a\":[1,2]}",
		"sort==last_activity_at",
		"X-Requested-With:XMLHttpRequest",
	}, false)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"message":  "hello=world",
		"per_page": json.Number("10"),
		"props":    map[string]interface{}{"a": []interface{}{json.Number("1"), json.Number("2")}},
	}, items.fields)
	assert.Equal(t, url.Values{"sort": []string{"last_activity_at"}}, items.query)
	assert.Equal(t, map[string]string{"X-Requested-With": "XMLHttpRequest"}, items.headers)
	assert.Empty(t, items.files)
}

func TestParseItemsErrors(t *testing.T) {
	for name, test := range map[string]struct {
		args []string
		form bool
	}{
		"no separator":   {[]string{"message"}, false},
		"missing name":   {[]string{"=value"}, false},
		"bad raw JSON":   {[]string{"a:={"}, false},
		"trailing JSON":  {[]string{"a:=1 2"}, false},
		"file in JSON":   {[]string{"image@logo.png"}, false},
		"raw JSON form":  {[]string{"a:=1"}, true},
		"missing header": {[]string{":value"}, false},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseItems(test.args, test.form)
			require.Error(t, err)
		})
	}
}

func TestApplyItems(t *testing.T) {
	t.Run("JSON body", func(t *testing.T) {
		items, err := parseItems([]string{"channel_id=c1", "message=hi"}, false)
		require.NoError(t, err)
		req := mmclient.NewRequest("T")
		attach, err := items.applyTo(req, mmclient.POST, "")
		require.NoError(t, err)
		assert.Equal(t, mmclient.AttachBody, attach)
		assert.Equal(t, map[string]interface{}{"channel_id": "c1", "message": "hi"}, req.JSON())
		assert.Equal(t, mmclient.ContentTypeJSON, req.Header().Get(mmclient.HeaderContentType))
	})

	t.Run("no items", func(t *testing.T) {
		items, err := parseItems(nil, false)
		require.NoError(t, err)
		attach, err := items.applyTo(mmclient.NewRequest("T"), mmclient.DEL, "")
		require.NoError(t, err)
		assert.Equal(t, mmclient.AttachNone, attach)
	})

	t.Run("raw body", func(t *testing.T) {
		items, err := parseItems([]string{"ignored=1"}, false)
		require.NoError(t, err)
		req := mmclient.NewRequest("T")
		attach, err := items.applyTo(req, mmclient.POST, `["u1","u2"]`)
		require.NoError(t, err)
		assert.Equal(t, mmclient.AttachBody, attach)
		body, ok := req.JSONBody()
		require.True(t, ok)
		assert.Equal(t, []interface{}{"u1", "u2"}, body)

		_, err = items.applyTo(mmclient.NewRequest("T"), mmclient.POST, `[`)
		require.Error(t, err)
	})

	t.Run("form", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, os.WriteFile(path, []byte("png"), 0600))

		items, err := parseItems([]string{"channel_id=c1", "files@" + path}, true)
		require.NoError(t, err)
		req := mmclient.NewRequest("T")
		attach, err := items.applyTo(req, mmclient.POST, "")
		require.NoError(t, err)
		assert.Equal(t, mmclient.AttachFile, attach)

		fields := req.Multipart()
		assert.Equal(t, "c1", fields["channel_id"])
		file, ok := fields["files"].(mmclient.File)
		require.True(t, ok)
		assert.Equal(t, "logo.png", file.Name)
	})
}
