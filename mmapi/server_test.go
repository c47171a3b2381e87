// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/mmapi"
	"github.com/mattermost/mattermost-api-go/mmclient"
	"github.com/mattermost/mattermost-api-go/utils"
	"github.com/mattermost/mattermost-api-go/utils/httputils"
)

const testToken = "test-token"

type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Header      http.Header
	Body        []byte
	ContentType string
}

// fakeServer is a Mattermost stand-in. It records every request, then
// routes it through router; unrouted requests get 200 and "{}".
type fakeServer struct {
	*httptest.Server
	router *mux.Router

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeServer(t *testing.T) (*fakeServer, *mmapi.API) {
	fs := &fakeServer{
		router: mux.NewRouter(),
	}
	fs.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		r.Body = io.NopCloser(bytes.NewReader(data))

		fs.mu.Lock()
		fs.requests = append(fs.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			Query:       r.URL.Query(),
			Header:      r.Header.Clone(),
			Body:        data,
			ContentType: r.Header.Get("Content-Type"),
		})
		fs.mu.Unlock()

		fs.router.ServeHTTP(w, r)
	}))
	t.Cleanup(fs.Close)

	api := mmapi.New(testToken, fs.URL, mmclient.WithLogger(utils.NewTestLogger(t)))
	return fs, api
}

func (fs *fakeServer) last(t *testing.T) recordedRequest {
	t.Helper()
	fs.mu.Lock()
	defer fs.mu.Unlock()
	require.NotEmpty(t, fs.requests, "no request reached the server")
	return fs.requests[len(fs.requests)-1]
}

func (fs *fakeServer) all() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v interface{}) {
	require.NoError(t, httputils.WriteJSONStatus(w, status, v))
}

func writeAppError(t *testing.T, w http.ResponseWriter, appErr *model.AppError) {
	writeJSON(t, w, appErr.StatusCode, appErr)
}
