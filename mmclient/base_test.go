// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient_test

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-api-go/mmclient"
	"github.com/mattermost/mattermost-api-go/mmclient/mock_mmclient"
	"github.com/mattermost/mattermost-api-go/utils"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func readBody(t *testing.T, rq *http.Request) string {
	t.Helper()
	if rq.Body == nil {
		return ""
	}
	data, err := io.ReadAll(rq.Body)
	require.NoError(t, err)
	return string(data)
}

func TestNew(t *testing.T) {
	b := mmclient.New("T", "https://example.com/")
	assert.Equal(t, "https://example.com/api/v4", b.APIURL())
	assert.Equal(t, "https://example.com/api/v4/bots/b1/disable", b.URL("bots", "b1", "disable"))
	assert.Equal(t, mmclient.Identity{Token: "T", ServerURL: "https://example.com"}, b.Identity())

	r := b.NewRequest()
	assert.Equal(t, http.Header{"Authorization": []string{"Bearer T"}}, r.Header())
	r.AddToJSON("x", 1)
	b.Reset(r)
	assert.Empty(t, r.JSON())
}

func TestRequestCreateBot(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com",
		mmclient.WithHTTPClient(doer),
		mmclient.WithLogger(utils.NewTestLogger(t)))

	doer.EXPECT().Do(gomock.Any()).Times(1).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, rq.Method)
		assert.Equal(t, "https://example.com/api/v4/bots", rq.URL.String())
		assert.Equal(t, "Bearer T", rq.Header.Get("Authorization"))
		assert.Equal(t, "application/json", rq.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"username":"bob","display_name":"Bob"}`, readBody(t, rq))
		return response(http.StatusCreated, `{"user_id":"u1","username":"bob"}`), nil
	})

	req := b.NewRequest()
	req.AddJSONHeader()
	req.AddToJSON("username", "bob")
	req.AddToJSON("display_name", "Bob")
	resp, err := b.Request(context.Background(), b.URL("bots"), mmclient.POST, req, mmclient.AttachBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	out := map[string]interface{}{}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "u1", out["user_id"])

	decoded, err := mmclient.DecodeAs[map[string]string](resp)
	require.NoError(t, err)
	assert.Equal(t, "bob", decoded["username"])
}

func TestRequestGETEncodesQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, rq.Method)
		assert.Equal(t, "/api/v4/bots", rq.URL.Path)
		q := rq.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "true", q.Get("include_deleted"))
		assert.Equal(t, []string{"a", "b"}, q["ids"])
		assert.Equal(t, "keep", q.Get("existing"))
		_, hasNil := q["nothing"]
		assert.False(t, hasNil)
		assert.Nil(t, rq.Body)
		assert.Zero(t, rq.ContentLength)
		return response(http.StatusOK, `[]`), nil
	})

	req := b.NewRequest()
	req.AddJSONHeader()
	req.AddToJSON("page", 2)
	req.AddToJSON("include_deleted", true)
	req.AddToJSON("ids", []string{"a", "b"})
	req.AddToJSON("nothing", nil)
	_, err := b.Request(context.Background(), b.URL("bots")+"?existing=keep", mmclient.GET, req, mmclient.AttachBody)
	require.NoError(t, err)
}

func TestRequestBodyOnlyWhenAttached(t *testing.T) {
	for name, test := range map[string]struct {
		method       mmclient.Method
		attach       mmclient.Attach
		expectedVerb string
		expectBody   bool
	}{
		"POST with body":    {mmclient.POST, mmclient.AttachBody, http.MethodPost, true},
		"POST without body": {mmclient.POST, mmclient.AttachNone, http.MethodPost, false},
		"PUT with body":     {mmclient.PUT, mmclient.AttachBody, http.MethodPut, true},
		"PATCH with body":   {mmclient.PATCH, mmclient.AttachBody, http.MethodPatch, true},
		"DEL with body":     {mmclient.DEL, mmclient.AttachBody, http.MethodDelete, true},
		"DEL without body":  {mmclient.DEL, mmclient.AttachNone, http.MethodDelete, false},
		"GET with body":     {mmclient.GET, mmclient.AttachBody, http.MethodGet, false},
	} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			doer := mock_mmclient.NewMockDoer(ctrl)
			b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

			doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
				assert.Equal(t, test.expectedVerb, rq.Method)
				body := readBody(t, rq)
				if test.expectBody {
					assert.JSONEq(t, `{"k":"v"}`, body)
					assert.Empty(t, rq.URL.RawQuery)
				} else {
					assert.Empty(t, body)
				}
				return response(http.StatusOK, `{}`), nil
			})

			req := b.NewRequest()
			req.AddToJSON("k", "v")
			_, err := b.Request(context.Background(), b.URL("x"), test.method, req, test.attach)
			require.NoError(t, err)
		})
	}
}

func TestRequestApplicationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	body := `{"id":"api.x","message":"forbidden"}`
	doer.EXPECT().Do(gomock.Any()).Return(response(http.StatusForbidden, body), nil)

	resp, err := b.Request(context.Background(), b.URL("bots"), mmclient.POST, b.NewRequest(), mmclient.AttachNone)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	appErr, ok := mmclient.AsApplicationError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
	assert.JSONEq(t, body, string(appErr.Body))
	require.NotNil(t, appErr.AppError)
	assert.Equal(t, "api.x", appErr.AppError.Id)
	assert.Equal(t, "forbidden", appErr.AppError.Message)
	assert.True(t, errors.Is(err, utils.ErrForbidden))
	assert.False(t, mmclient.IsTransportError(err))
	assert.Equal(t, "status 403: api.x: forbidden", err.Error())
}

func TestRequestTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	refused := errors.New("connection refused")
	doer.EXPECT().Do(gomock.Any()).Return(nil, refused)

	resp, err := b.Request(context.Background(), b.URL("bots"), mmclient.DEL, nil, mmclient.AttachNone)
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, mmclient.IsTransportError(err))
	assert.True(t, errors.Is(err, refused))
	_, isApp := mmclient.AsApplicationError(err)
	assert.False(t, isApp)
	assert.Equal(t, "DELETE https://example.com/api/v4/bots: connection refused", err.Error())
}

func TestRequestIsolation(t *testing.T) {
	var payloads []map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := map[string]interface{}{}
		_ = json.NewDecoder(r.Body).Decode(&p)
		payloads = append(payloads, p)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	b := mmclient.New("T", server.URL)

	req := b.NewRequest()
	req.AddJSONHeader()
	req.AddToJSON("username", "bob")
	req.AddToJSON("description", "first")
	_, err := b.Request(context.Background(), b.URL("bots"), mmclient.POST, req, mmclient.AttachBody)
	require.NoError(t, err)

	b.Reset(req)
	req.AddJSONHeader()
	req.AddToJSON("username", "alice")
	_, err = b.Request(context.Background(), b.URL("bots"), mmclient.POST, req, mmclient.AttachBody)
	require.NoError(t, err)

	require.Len(t, payloads, 2)
	assert.Equal(t, map[string]interface{}{"username": "bob", "description": "first"}, payloads[0])
	assert.Equal(t, map[string]interface{}{"username": "alice"}, payloads[1])
}

func TestRequestMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		require.NotEmpty(t, params["boundary"])

		mr := multipart.NewReader(r.Body, params["boundary"])
		parts := map[string]string{}
		filenames := map[string]string{}
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			data, err := io.ReadAll(p)
			require.NoError(t, err)
			parts[p.FormName()] = string(data)
			filenames[p.FormName()] = p.FileName()
		}
		assert.Equal(t, map[string]string{
			"channel_id": "c1",
			"files":      "hello",
			"image":      "png-bytes",
			"raw":        "from-reader",
		}, parts)
		assert.Equal(t, "hello.txt", filenames["files"])
		assert.Equal(t, "image", filenames["image"])
		assert.Empty(t, filenames["channel_id"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"file_infos":[]}`))
	}))
	t.Cleanup(server.Close)

	b := mmclient.New("T", server.URL)
	req := b.NewRequest()
	req.AddMultipartHeader()
	req.AddToJSON("channel_id", "c1")
	req.AddToMultipartFormData("files", mmclient.File{Name: "hello.txt", Content: strings.NewReader("hello")})
	req.AddToMultipartFormData("image", []byte("png-bytes"))
	req.AddToMultipartFormData("raw", strings.NewReader("from-reader"))

	resp, err := b.Request(context.Background(), b.URL("files"), mmclient.POST, req, mmclient.AttachBody|mmclient.AttachFile)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRequestUnsupportedMultipartValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	req := b.NewRequest()
	req.AddToMultipartFormData("image", 42)
	_, err := b.Request(context.Background(), b.URL("brand", "image"), mmclient.POST, req, mmclient.AttachFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported multipart value of type int")
	assert.False(t, mmclient.IsTransportError(err))
}

func TestRequestUserAgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer), mmclient.WithUserAgent("test/1"))

	gomock.InOrder(
		doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
			assert.Equal(t, "test/1", rq.Header.Get("User-Agent"))
			return response(http.StatusOK, `{}`), nil
		}),
		doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
			assert.Equal(t, "custom", rq.Header.Get("User-Agent"))
			return response(http.StatusOK, `{}`), nil
		}),
	)

	_, err := b.Request(context.Background(), b.URL("users", "me"), mmclient.GET, nil, mmclient.AttachNone)
	require.NoError(t, err)

	req := b.NewRequest()
	req.AddHeader("User-Agent", "custom")
	_, err = b.Request(context.Background(), b.URL("users", "me"), mmclient.GET, req, mmclient.AttachNone)
	require.NoError(t, err)
}

func TestRequestJSONBodyValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	doer.EXPECT().Do(gomock.Any()).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, rq.Method)
		assert.JSONEq(t, `["u1","u2"]`, readBody(t, rq))
		return response(http.StatusOK, `[]`), nil
	})

	req := b.NewRequest()
	req.AddJSONHeader()
	req.AddToJSON("ignored", true)
	req.SetJSONBody([]string{"u1", "u2"})
	_, err := b.Request(context.Background(), b.URL("users", "ids"), mmclient.POST, req, mmclient.AttachBody)
	require.NoError(t, err)
}

func TestRequestNilMultipartFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	var file *mmclient.File
	req := b.NewRequest()
	req.AddToMultipartFormData("image", file)
	_, err := b.Request(context.Background(), b.URL("brand", "image"), mmclient.POST, req, mmclient.AttachFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil file")
}

func TestRequestGETNeverSendsMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	doer.EXPECT().Do(gomock.Any()).Times(1).DoAndReturn(func(rq *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodGet, rq.Method)
		assert.Equal(t, "https://example.com/api/v4/files/f1?download=true", rq.URL.String())
		assert.Empty(t, readBody(t, rq))
		assert.Zero(t, rq.ContentLength)
		return response(http.StatusOK, `{}`), nil
	})

	req := b.NewRequest()
	req.AddToJSON("download", true)
	req.AddToMultipartFormData("files", []byte("data"))
	_, err := b.Request(context.Background(), b.URL("files", "f1"), mmclient.GET, req, mmclient.AttachBody|mmclient.AttachFile)
	require.NoError(t, err)
}

func TestRequestNilResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	doer := mock_mmclient.NewMockDoer(ctrl)
	b := mmclient.New("T", "https://example.com", mmclient.WithHTTPClient(doer))

	doer.EXPECT().Do(gomock.Any()).Times(1).Return(&http.Response{StatusCode: http.StatusNoContent, Header: http.Header{}}, nil)

	resp, err := b.Request(context.Background(), b.URL("users", "logout"), mmclient.POST, nil, mmclient.AttachNone)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}
