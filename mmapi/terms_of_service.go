// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type TermsOfService struct{ resource }

// RecordTermsOfServiceAction records whether userID accepted the terms of
// service termsID.
func (t *TermsOfService) RecordTermsOfServiceAction(ctx context.Context, userID, termsID string, accepted bool) (*Response, error) {
	req := t.newJSONRequest()
	req.AddToJSON("user_id", userID)
	req.AddToJSON("serviceTermsId", termsID)
	req.AddToJSON("accepted", accepted)
	return t.do(ctx, mmclient.POST, t.url(userID, "terms_of_service"), req, mmclient.AttachBody)
}

// GetTermsOfServiceStatus gets the last terms of service action of userID.
func (t *TermsOfService) GetTermsOfServiceStatus(ctx context.Context, userID string) (*Response, error) {
	return t.do(ctx, mmclient.GET, t.url(userID, "terms_of_service"), nil, mmclient.AttachNone)
}

// GetTermsOfService gets the latest terms of service text.
func (t *TermsOfService) GetTermsOfService(ctx context.Context) (*Response, error) {
	return t.do(ctx, mmclient.GET, t.rootURL("terms_of_service"), nil, mmclient.AttachNone)
}
