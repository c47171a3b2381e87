// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package httputils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-api-go/utils"
)

func TestNormalizeServerURL(t *testing.T) {
	for _, tc := range []struct {
		in, out, err string
	}{
		// Happy
		{"http://mmtest.somedomain.net", "http://mmtest.somedomain.net", ""},
		{"https://mmtest.somedomain.net", "https://mmtest.somedomain.net", ""},
		{"http://localhost:8065/", "http://localhost:8065", ""},
		{"mmtest.somedomain.net", "https://mmtest.somedomain.net", ""},
		{"mmtest.somedomain.net/", "https://mmtest.somedomain.net", ""},
		{"mmtest.somedomain.net/abc", "https://mmtest.somedomain.net/abc", ""},
		{"mmtest.somedomain.net/abc/", "https://mmtest.somedomain.net/abc", ""},
		{"mmtest", "https://mmtest", ""},
		{"//xyz.com/", "https://xyz.com", ""},

		// Errors
		{"[jdsh", "",
			`parse "//[jdsh": missing ']' in host`},
		{"/mmtest", "",
			`invalid URL, no hostname: "/mmtest"`},
		{"http:/mmtest/", "",
			`invalid URL, no hostname: "http:/mmtest/"`},
	} {
		t.Run(tc.in, func(t *testing.T) {
			out, err := NormalizeServerURL(tc.in)
			require.Equal(t, tc.out, out)
			errTxt := ""
			if err != nil {
				errTxt = err.Error()
			}
			require.Equal(t, tc.err, errTxt)
		})
	}
}

func TestErrorStatusMapping(t *testing.T) {
	for _, sentinel := range []error{
		utils.ErrInvalid,
		utils.ErrUnauthorized,
		utils.ErrForbidden,
		utils.ErrNotFound,
		utils.ErrAlreadyExists,
	} {
		status := ErrorToStatus(errors.Wrap(sentinel, "wrapped"))
		assert.Equal(t, sentinel, StatusToError(status), sentinel.Error())
	}
	assert.Equal(t, http.StatusInternalServerError, ErrorToStatus(errors.New("other")))
	assert.Nil(t, StatusToError(http.StatusBadGateway))
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, utils.NewNotFoundError("user %s", "u1"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user u1: not found\n", w.Body.String())
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	require.NoError(t, WriteJSONStatus(w, http.StatusCreated, map[string]string{"id": "b1"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"b1"}`, w.Body.String())
}
