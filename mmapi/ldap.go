// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// LDAP wraps /ldap. Requires an Enterprise license and manage_system.
type LDAP struct{ resource }

// MigrateAuthToLDAP migrates accounts from one authentication provider to
// LDAP. matchField is the user attribute used to match accounts.
func (l *LDAP) MigrateAuthToLDAP(ctx context.Context, from, matchField string, force mmclient.Opt[bool]) (*Response, error) {
	req := l.newJSONRequest()
	req.AddToJSON("from", from)
	req.AddToJSON("match_field", matchField)
	mmclient.AddOpt(req, "force", force)
	return l.do(ctx, mmclient.POST, l.rootURL("users", "migrate_auth", "ldap"), req, mmclient.AttachBody)
}

func (l *LDAP) Sync(ctx context.Context) (*Response, error) {
	return l.do(ctx, mmclient.POST, l.url("sync"), nil, mmclient.AttachNone)
}

// Test tests the current LDAP configuration against the directory server.
func (l *LDAP) Test(ctx context.Context) (*Response, error) {
	return l.do(ctx, mmclient.POST, l.url("test"), nil, mmclient.AttachNone)
}

// MigrateID changes the attribute used as the LDAP ID for every user.
func (l *LDAP) MigrateID(ctx context.Context, toAttribute string) (*Response, error) {
	req := l.newJSONRequest()
	req.AddToJSON("toAttribute", toAttribute)
	return l.do(ctx, mmclient.POST, l.url("migrateid"), req, mmclient.AttachBody)
}

func (l *LDAP) UploadPublicCertificate(ctx context.Context, filename string, certificate io.Reader) (*Response, error) {
	return l.uploadCertificate(ctx, "public", filename, certificate)
}

func (l *LDAP) RemovePublicCertificate(ctx context.Context) (*Response, error) {
	return l.do(ctx, mmclient.DEL, l.url("certificate", "public"), nil, mmclient.AttachNone)
}

func (l *LDAP) UploadPrivateKey(ctx context.Context, filename string, key io.Reader) (*Response, error) {
	return l.uploadCertificate(ctx, "private", filename, key)
}

func (l *LDAP) RemovePrivateKey(ctx context.Context) (*Response, error) {
	return l.do(ctx, mmclient.DEL, l.url("certificate", "private"), nil, mmclient.AttachNone)
}

// AddUserGroupSyncMemberships adds userID to the teams and channels its LDAP
// groups are synced with.
func (l *LDAP) AddUserGroupSyncMemberships(ctx context.Context, userID string) (*Response, error) {
	return l.do(ctx, mmclient.POST, l.url("users", userID, "group_sync_memberships"), nil, mmclient.AttachNone)
}

func (l *LDAP) uploadCertificate(ctx context.Context, kind, filename string, content io.Reader) (*Response, error) {
	req := l.newMultipartRequest()
	req.AddToMultipartFormData("certificate", mmclient.File{Name: filename, Content: content})
	return l.do(ctx, mmclient.POST, l.url("certificate", kind), req, mmclient.AttachFile)
}
