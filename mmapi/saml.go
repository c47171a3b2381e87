// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"
	"io"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// SAML wraps /saml. Requires an Enterprise license and manage_system.
type SAML struct{ resource }

// MigrateAuthToSAML migrates accounts from one authentication provider to
// SAML. matches maps Mattermost user IDs to SAML IDs; auto matches them by
// email instead.
func (s *SAML) MigrateAuthToSAML(ctx context.Context, from string, matches map[string]string, auto bool) (*Response, error) {
	req := s.newJSONRequest()
	req.AddToJSON("from", from)
	req.AddToJSON("matches", matches)
	req.AddToJSON("auto", auto)
	return s.do(ctx, mmclient.POST, s.rootURL("users", "migrate_auth", "saml"), req, mmclient.AttachBody)
}

// GetMetadata returns the service provider metadata XML in Response.Body.
func (s *SAML) GetMetadata(ctx context.Context) (*Response, error) {
	return s.do(ctx, mmclient.GET, s.url("metadata"), nil, mmclient.AttachNone)
}

func (s *SAML) GetMetadataFromIdP(ctx context.Context, metadataURL string) (*Response, error) {
	req := s.newJSONRequest()
	req.AddToJSON("saml_metadata_url", metadataURL)
	return s.do(ctx, mmclient.POST, s.url("metadatafromidp"), req, mmclient.AttachBody)
}

func (s *SAML) UploadIdPCertificate(ctx context.Context, filename string, certificate io.Reader) (*Response, error) {
	return s.uploadCertificate(ctx, "idp", filename, certificate)
}

func (s *SAML) RemoveIdPCertificate(ctx context.Context) (*Response, error) {
	return s.do(ctx, mmclient.DEL, s.url("certificate", "idp"), nil, mmclient.AttachNone)
}

func (s *SAML) UploadPublicCertificate(ctx context.Context, filename string, certificate io.Reader) (*Response, error) {
	return s.uploadCertificate(ctx, "public", filename, certificate)
}

func (s *SAML) RemovePublicCertificate(ctx context.Context) (*Response, error) {
	return s.do(ctx, mmclient.DEL, s.url("certificate", "public"), nil, mmclient.AttachNone)
}

func (s *SAML) UploadPrivateKey(ctx context.Context, filename string, key io.Reader) (*Response, error) {
	return s.uploadCertificate(ctx, "private", filename, key)
}

func (s *SAML) RemovePrivateKey(ctx context.Context) (*Response, error) {
	return s.do(ctx, mmclient.DEL, s.url("certificate", "private"), nil, mmclient.AttachNone)
}

func (s *SAML) GetCertificateStatus(ctx context.Context) (*Response, error) {
	return s.do(ctx, mmclient.GET, s.url("certificate", "status"), nil, mmclient.AttachNone)
}

// ResetAuthDataToEmail resets the SAML auth data of users to their email.
// With dryRun set the server only reports how many would be affected.
func (s *SAML) ResetAuthDataToEmail(ctx context.Context, includeDeleted, dryRun mmclient.Opt[bool], userIDs mmclient.Opt[[]string]) (*Response, error) {
	req := s.newJSONRequest()
	mmclient.AddOpt(req, "include_deleted", includeDeleted)
	mmclient.AddOpt(req, "dry_run", dryRun)
	mmclient.AddOpt(req, "user_ids", userIDs)
	return s.do(ctx, mmclient.POST, s.url("reset_auth_data"), req, mmclient.AttachBody)
}

func (s *SAML) uploadCertificate(ctx context.Context, kind, filename string, content io.Reader) (*Response, error) {
	req := s.newMultipartRequest()
	req.AddToMultipartFormData("certificate", mmclient.File{Name: filename, Content: content})
	return s.do(ctx, mmclient.POST, s.url("certificate", kind), req, mmclient.AttachFile)
}
