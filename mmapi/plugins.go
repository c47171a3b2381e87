// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Plugins wraps /plugins. Plugin uploads must be enabled in the server
// configuration.
type Plugins struct{ resource }

// UploadPlugin uploads a plugin bundle. force overwrites an installed
// plugin with the same ID.
func (p *Plugins) UploadPlugin(ctx context.Context, filename string, bundle io.Reader, force mmclient.Opt[bool]) (*Response, error) {
	req := p.newMultipartRequest()
	req.AddToMultipartFormData("plugin", mmclient.File{Name: filename, Content: bundle})
	mmclient.AddOptMultipart(req, "force", force)
	return p.do(ctx, mmclient.POST, p.url(), req, mmclient.AttachFile)
}

func (p *Plugins) GetPlugins(ctx context.Context) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url(), nil, mmclient.AttachNone)
}

// InstallPluginFromURL makes the server download and install a bundle.
func (p *Plugins) InstallPluginFromURL(ctx context.Context, downloadURL string, force mmclient.Opt[bool]) (*Response, error) {
	query := url.Values{"plugin_download_url": []string{downloadURL}}
	if f, ok := force.Get(); ok {
		query.Set("force", strconv.FormatBool(f))
	}
	return p.do(ctx, mmclient.POST, withQuery(p.url("install_from_url"), query), nil, mmclient.AttachNone)
}

func (p *Plugins) RemovePlugin(ctx context.Context, pluginID string) (*Response, error) {
	return p.do(ctx, mmclient.DEL, p.url(pluginID), nil, mmclient.AttachNone)
}

func (p *Plugins) EnablePlugin(ctx context.Context, pluginID string) (*Response, error) {
	return p.do(ctx, mmclient.POST, p.url(pluginID, "enable"), nil, mmclient.AttachNone)
}

func (p *Plugins) DisablePlugin(ctx context.Context, pluginID string) (*Response, error) {
	return p.do(ctx, mmclient.POST, p.url(pluginID, "disable"), nil, mmclient.AttachNone)
}

// GetWebappPlugins gets the manifests of the plugins with a webapp part.
func (p *Plugins) GetWebappPlugins(ctx context.Context) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url("webapp"), nil, mmclient.AttachNone)
}

func (p *Plugins) GetPluginStatuses(ctx context.Context) (*Response, error) {
	return p.do(ctx, mmclient.GET, p.url("statuses"), nil, mmclient.AttachNone)
}
