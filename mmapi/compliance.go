// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Compliance wraps /compliance/reports. Requires an Enterprise license and
// manage_system.
type Compliance struct{ resource }

func (c *Compliance) CreateReport(ctx context.Context) (*Response, error) {
	return c.do(ctx, mmclient.POST, c.url("reports"), nil, mmclient.AttachNone)
}

func (c *Compliance) GetReports(ctx context.Context, paging Paging) (*Response, error) {
	req := c.newJSONRequest()
	paging.addTo(req)
	return c.do(ctx, mmclient.GET, c.url("reports"), req, mmclient.AttachBody)
}

func (c *Compliance) GetReport(ctx context.Context, reportID string) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("reports", reportID), nil, mmclient.AttachNone)
}

// DownloadReport returns the zipped report in Response.Body.
func (c *Compliance) DownloadReport(ctx context.Context, reportID string) (*Response, error) {
	return c.do(ctx, mmclient.GET, c.url("reports", reportID, "download"), nil, mmclient.AttachNone)
}
