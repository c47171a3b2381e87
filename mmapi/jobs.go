// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

// Jobs wraps /jobs. Requires manage_jobs.
type Jobs struct{ resource }

func (j *Jobs) GetJobs(ctx context.Context, paging Paging) (*Response, error) {
	req := j.newJSONRequest()
	paging.addTo(req)
	return j.do(ctx, mmclient.GET, j.url(), req, mmclient.AttachBody)
}

// CreateJob schedules a job of jobType, e.g. model.JobTypeDataRetention.
func (j *Jobs) CreateJob(ctx context.Context, jobType string, data mmclient.Opt[map[string]string]) (*Response, error) {
	req := j.newJSONRequest()
	req.AddToJSON("type", jobType)
	mmclient.AddOpt(req, "data", data)
	return j.do(ctx, mmclient.POST, j.url(), req, mmclient.AttachBody)
}

func (j *Jobs) GetJob(ctx context.Context, jobID string) (*Response, error) {
	return j.do(ctx, mmclient.GET, j.url(jobID), nil, mmclient.AttachNone)
}

// DownloadJob returns the job's result file in Response.Body.
func (j *Jobs) DownloadJob(ctx context.Context, jobID string) (*Response, error) {
	return j.do(ctx, mmclient.GET, j.url(jobID, "download"), nil, mmclient.AttachNone)
}

func (j *Jobs) CancelJob(ctx context.Context, jobID string) (*Response, error) {
	return j.do(ctx, mmclient.POST, j.url(jobID, "cancel"), nil, mmclient.AttachNone)
}

func (j *Jobs) GetJobsByType(ctx context.Context, jobType string, paging Paging) (*Response, error) {
	req := j.newJSONRequest()
	paging.addTo(req)
	return j.do(ctx, mmclient.GET, j.url("type", jobType), req, mmclient.AttachBody)
}
