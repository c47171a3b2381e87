// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmapi

import (
	"context"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

type Roles struct{ resource }

func (r *Roles) GetRoles(ctx context.Context) (*Response, error) {
	return r.do(ctx, mmclient.GET, r.url(), nil, mmclient.AttachNone)
}

func (r *Roles) GetRole(ctx context.Context, roleID string) (*Response, error) {
	return r.do(ctx, mmclient.GET, r.url(roleID), nil, mmclient.AttachNone)
}

func (r *Roles) GetRoleByName(ctx context.Context, roleName string) (*Response, error) {
	return r.do(ctx, mmclient.GET, r.url("name", roleName), nil, mmclient.AttachNone)
}

// PatchRole replaces the permissions of a role. Requires manage_system.
func (r *Roles) PatchRole(ctx context.Context, roleID string, permissions []string) (*Response, error) {
	req := r.newJSONRequest()
	req.AddToJSON("permissions", permissions)
	return r.do(ctx, mmclient.PUT, r.url(roleID, "patch"), req, mmclient.AttachBody)
}

func (r *Roles) GetRolesByNames(ctx context.Context, roleNames []string) (*Response, error) {
	req := r.newJSONRequest()
	req.SetJSONBody(roleNames)
	return r.do(ctx, mmclient.POST, r.url("names"), req, mmclient.AttachBody)
}
