// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

// Package mmapi groups the Mattermost REST API v4 endpoints by resource.
// Every method builds its own request state and dispatches it through a
// shared, stateless mmclient.Base, so an *API is safe for concurrent use.
//
// Methods return the raw *mmclient.Response; use Response.Decode or
// mmclient.DecodeAs to get typed values. Non-2xx statuses come back as an
// *mmclient.ApplicationError together with the response.
package mmapi

import (
	"github.com/mattermost/mattermost-api-go/mmclient"
)

type API struct {
	base *mmclient.Base
}

func New(token, serverURL string, opts ...mmclient.Option) *API {
	return NewFromBase(mmclient.New(token, serverURL, opts...))
}

func NewFromBase(base *mmclient.Base) *API {
	return &API{base: base}
}

func (a *API) Base() *mmclient.Base { return a.base }

func (a *API) Bots() *Bots                   { return &Bots{newResource(a.base, "bots")} }
func (a *API) Brand() *Brand                 { return &Brand{newResource(a.base, "brand")} }
func (a *API) Cloud() *Cloud                 { return &Cloud{newResource(a.base, "cloud")} }
func (a *API) Cluster() *Cluster             { return &Cluster{newResource(a.base, "cluster")} }
func (a *API) Commands() *Commands           { return &Commands{newResource(a.base, "commands")} }
func (a *API) Compliance() *Compliance       { return &Compliance{newResource(a.base, "compliance")} }
func (a *API) DataRetention() *DataRetention { return &DataRetention{newResource(a.base, "data_retention")} }
func (a *API) Emoji() *Emoji                 { return &Emoji{newResource(a.base, "emoji")} }
func (a *API) Exports() *Exports             { return &Exports{newResource(a.base, "exports")} }
func (a *API) Files() *Files                 { return &Files{newResource(a.base, "files")} }
func (a *API) Groups() *Groups               { return &Groups{newResource(a.base, "groups")} }
func (a *API) IntegrationActions() *IntegrationActions {
	return &IntegrationActions{newResource(a.base, "actions", "dialogs")}
}
func (a *API) Jobs() *Jobs                     { return &Jobs{newResource(a.base, "jobs")} }
func (a *API) LDAP() *LDAP                     { return &LDAP{newResource(a.base, "ldap")} }
func (a *API) OAuth() *OAuth                   { return &OAuth{newResource(a.base, "oauth", "apps")} }
func (a *API) Plugins() *Plugins               { return &Plugins{newResource(a.base, "plugins")} }
func (a *API) Posts() *Posts                   { return &Posts{newResource(a.base, "posts")} }
func (a *API) Preferences() *Preferences       { return &Preferences{newResource(a.base, "users")} }
func (a *API) Reactions() *Reactions           { return &Reactions{newResource(a.base, "reactions")} }
func (a *API) Roles() *Roles                   { return &Roles{newResource(a.base, "roles")} }
func (a *API) SAML() *SAML                     { return &SAML{newResource(a.base, "saml")} }
func (a *API) Schemes() *Schemes               { return &Schemes{newResource(a.base, "schemes")} }
func (a *API) SharedChannels() *SharedChannels { return &SharedChannels{newResource(a.base, "sharedchannels")} }
func (a *API) Status() *Status                 { return &Status{newResource(a.base, "users")} }
func (a *API) TermsOfService() *TermsOfService { return &TermsOfService{newResource(a.base, "users")} }
func (a *API) Threads() *Threads               { return &Threads{newResource(a.base, "users")} }
func (a *API) Uploads() *Uploads               { return &Uploads{newResource(a.base, "uploads")} }
func (a *API) Usage() *Usage                   { return &Usage{newResource(a.base, "usage")} }
func (a *API) Users() *Users                   { return &Users{newResource(a.base, "users")} }
func (a *API) Webhooks() *Webhooks             { return &Webhooks{newResource(a.base, "hooks")} }
