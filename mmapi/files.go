// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Files struct{ resource }

// UploadFile uploads one file to a channel. The returned file info has to be
// attached to a post to become visible. clientID is echoed back by the
// server to correlate uploads.
func (f *Files) UploadFile(ctx context.Context, channelID, filename string, content io.Reader, clientID mmclient.Opt[string]) (*Response, error) {
	req := f.newMultipartRequest()
	req.AddToMultipartFormData("channel_id", channelID)
	req.AddToMultipartFormData("files", mmclient.File{Name: filename, Content: content})
	mmclient.AddOptMultipart(req, "client_ids", clientID)
	return f.do(ctx, mmclient.POST, f.url(), req, mmclient.AttachFile)
}

// GetFile returns the file content in Response.Body.
func (f *Files) GetFile(ctx context.Context, fileID string) (*Response, error) {
	return f.do(ctx, mmclient.GET, f.url(fileID), nil, mmclient.AttachNone)
}

func (f *Files) GetFileThumbnail(ctx context.Context, fileID string) (*Response, error) {
	return f.do(ctx, mmclient.GET, f.url(fileID, "thumbnail"), nil, mmclient.AttachNone)
}

func (f *Files) GetFilePreview(ctx context.Context, fileID string) (*Response, error) {
	return f.do(ctx, mmclient.GET, f.url(fileID, "preview"), nil, mmclient.AttachNone)
}

// GetFileLink gets a public link to a file. Public links must be enabled in
// the system console.
func (f *Files) GetFileLink(ctx context.Context, fileID string) (*Response, error) {
	return f.do(ctx, mmclient.GET, f.url(fileID, "link"), nil, mmclient.AttachNone)
}

func (f *Files) GetFileInfo(ctx context.Context, fileID string) (*Response, error) {
	return f.do(ctx, mmclient.GET, f.url(fileID, "info"), nil, mmclient.AttachNone)
}

// GetPublicFile fetches a file through its public link. hash is the "h"
// parameter of the link.
func (f *Files) GetPublicFile(ctx context.Context, fileID, hash string) (*Response, error) {
	req := f.newJSONRequest()
	req.AddToJSON("h", hash)
	return f.do(ctx, mmclient.GET, f.url(fileID, "public"), req, mmclient.AttachBody)
}

type FileSearch struct {
	Terms                  string
	IsOrSearch             bool
	TimeZoneOffset         mmclient.Opt[int]
	IncludeDeletedChannels mmclient.Opt[bool]
	Page                   mmclient.Opt[int]
	PerPage                mmclient.Opt[int]
}

// SearchFiles searches the files of a team. Minimum server version: 5.34.
func (f *Files) SearchFiles(ctx context.Context, teamID string, search FileSearch) (*Response, error) {
	req := f.newJSONRequest()
	req.AddToJSON("terms", search.Terms)
	req.AddToJSON("is_or_search", search.IsOrSearch)
	mmclient.AddOpt(req, "time_zone_offset", search.TimeZoneOffset)
	mmclient.AddOpt(req, "include_deleted_channels", search.IncludeDeletedChannels)
	mmclient.AddOpt(req, "page", search.Page)
	mmclient.AddOpt(req, "per_page", search.PerPage)
	return f.do(ctx, mmclient.POST, f.rootURL("teams", teamID, "files", "search"), req, mmclient.AttachBody)
}
