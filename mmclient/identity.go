// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/utils"
)

// Identity is who a client talks as, and to which server.
type Identity struct {
	Token     string
	ServerURL string
}

func NewIdentity(token, serverURL string) Identity {
	return Identity{
		Token:     token,
		ServerURL: strings.TrimRight(serverURL, "/"),
	}
}

// APIURL is the root of the v4 REST API, e.g. https://mm.example.com/api/v4.
func (id Identity) APIURL() string {
	return strings.TrimRight(id.ServerURL, "/") + model.APIURLSuffix
}

// Validate checks that the identity can be used to reach a server. It is
// never called implicitly.
func (id Identity) Validate() error {
	var result error
	if id.Token == "" {
		result = multierror.Append(result, utils.NewInvalidError("token must not be empty"))
	}
	if err := utils.IsValidHTTPURL(id.ServerURL); err != nil {
		result = multierror.Append(result, utils.NewInvalidError(errors.Wrapf(err, "server URL %q", id.ServerURL)))
	}
	return result
}

func (id Identity) Loggable() []interface{} {
	return []interface{}{"server_url", id.ServerURL, "token", utils.LastN(id.Token, 4)}
}
