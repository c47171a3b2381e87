// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// OAuth wraps /oauth/apps, the registry of OAuth 2.0 applications that can
// sign users in through Mattermost.
type OAuth struct{ resource }

type OAuthApp struct {
	Name         string
	Description  string
	IconURL      mmclient.Opt[string]
	CallbackURLs []string
	Homepage     string
	IsTrusted    mmclient.Opt[bool]
}

func (app OAuthApp) addTo(req *mmclient.Request) {
	req.AddToJSON("name", app.Name)
	req.AddToJSON("description", app.Description)
	mmclient.AddOpt(req, "icon_url", app.IconURL)
	req.AddToJSON("callback_urls", app.CallbackURLs)
	req.AddToJSON("homepage", app.Homepage)
	mmclient.AddOpt(req, "is_trusted", app.IsTrusted)
}

func (o *OAuth) RegisterApp(ctx context.Context, app OAuthApp) (*Response, error) {
	req := o.newJSONRequest()
	app.addTo(req)
	return o.do(ctx, mmclient.POST, o.url(), req, mmclient.AttachBody)
}

func (o *OAuth) GetApps(ctx context.Context, paging Paging) (*Response, error) {
	req := o.newJSONRequest()
	paging.addTo(req)
	return o.do(ctx, mmclient.GET, o.url(), req, mmclient.AttachBody)
}

func (o *OAuth) GetApp(ctx context.Context, appID string) (*Response, error) {
	return o.do(ctx, mmclient.GET, o.url(appID), nil, mmclient.AttachNone)
}

func (o *OAuth) UpdateApp(ctx context.Context, appID string, app OAuthApp) (*Response, error) {
	req := o.newJSONRequest()
	req.AddToJSON("id", appID)
	app.addTo(req)
	return o.do(ctx, mmclient.PUT, o.url(appID), req, mmclient.AttachBody)
}

func (o *OAuth) DeleteApp(ctx context.Context, appID string) (*Response, error) {
	return o.do(ctx, mmclient.DEL, o.url(appID), nil, mmclient.AttachNone)
}

func (o *OAuth) RegenerateSecret(ctx context.Context, appID string) (*Response, error) {
	return o.do(ctx, mmclient.POST, o.url(appID, "regen_secret"), nil, mmclient.AttachNone)
}

// GetAppInfo gets the public part of an app, sanitized of its secret.
func (o *OAuth) GetAppInfo(ctx context.Context, appID string) (*Response, error) {
	return o.do(ctx, mmclient.GET, o.url(appID, "info"), nil, mmclient.AttachNone)
}

func (o *OAuth) GetAuthorizedApps(ctx context.Context, userID string, paging Paging) (*Response, error) {
	req := o.newJSONRequest()
	paging.addTo(req)
	return o.do(ctx, mmclient.GET, o.rootURL("users", userID, "oauth", "apps", "authorized"), req, mmclient.AttachBody)
}

// Config returns an oauth2 configuration for a registered app, pointed at
// the authorization and token endpoints of this server.
func (o *OAuth) Config(clientID, clientSecret, redirectURL string, scopes ...string) *oauth2.Config {
	serverURL := o.base.Identity().ServerURL
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  serverURL + "/oauth/authorize",
			TokenURL: serverURL + "/oauth/access_token",
		},
	}
}
