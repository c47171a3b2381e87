// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

func TestPrintBodyJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, false, false)

	body := `{"username":"bot","id":"u1","roles":["system_user"],"props":{},"create_at":1600000000000,"is_bot":true,"deleted":null,"html":"<b>"}`
	require.NoError(t, p.PrintBody([]byte(body), "application/json; charset=utf-8"))
	assert.Equal(t, `{
    "create_at": 1600000000000,
    "deleted": null,
    "html": "<b>",
    "id": "u1",
    "is_bot": true,
    "props": {},
    "roles": [
        "system_user"
    ],
    "username": "bot"
}
`, buf.String())
}

func TestPrintBodyNonJSON(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, NewPrinter(buf, false, false).PrintBody([]byte("OK\n"), "text/plain"))
		assert.Equal(t, "OK\n", buf.String())
	})

	t.Run("binary", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, NewPrinter(buf, false, false).PrintBody(make([]byte, 2048), "image/png"))
		assert.Contains(t, buf.String(), "binary data not shown (2K)")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		buf := &bytes.Buffer{}
		err := NewPrinter(buf, false, false).PrintBody([]byte("{"), "application/json")
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, NewPrinter(buf, false, false).PrintBody(nil, "application/json"))
		assert.Empty(t, buf.String())
	})
}

func TestPrintResponseHeaders(t *testing.T) {
	buf := &bytes.Buffer{}
	resp := &mmclient.Response{
		StatusCode: http.StatusCreated,
		Header: http.Header{
			"Content-Type": []string{"application/json"},
			"X-Request-Id": []string{"r1"},
		},
		Body: []byte(`[]`),
	}
	require.NoError(t, NewPrinter(buf, false, true).PrintResponse(resp))
	assert.Equal(t, "201 Created\nContent-Type: application/json\nX-Request-Id: r1\n\n[]\n", buf.String())
}

func TestPrinterColor(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, NewPrinter(buf, true, false).PrintBody([]byte(`{"a":1}`), "application/json"))
	assert.Contains(t, buf.String(), "\x1b[")

	buf.Reset()
	require.NoError(t, newPrinter(buf).PrintBody([]byte(`{"a":1}`), "application/json"))
	assert.NotContains(t, buf.String(), "\x1b[")
}
