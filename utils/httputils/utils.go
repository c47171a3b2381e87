// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package httputils

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-api-go/utils"
)

// NormalizeServerURL accepts a server URL the way users type it, with or
// without a scheme, and returns it with a scheme and no trailing slash.
// https is assumed when no scheme is given.
func NormalizeServerURL(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		ss := strings.Split(u.Path, "/")
		if len(ss) > 0 && ss[0] != "" {
			u.Host = ss[0]
			u.Path = path.Join(ss[1:]...)
		}
		u, err = url.Parse(u.String())
		if err != nil {
			return "", err
		}
	}
	if u.Host == "" {
		return "", errors.Errorf("invalid URL, no hostname: %q", serverURL)
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}

func WriteError(w http.ResponseWriter, err error) {
	if err == nil {
		http.Error(w, "invalid (unknown?) error", http.StatusInternalServerError)
		return
	}

	http.Error(w, err.Error(), ErrorToStatus(err))
}

func ErrorToStatus(err error) int {
	switch errors.Cause(err) {
	case utils.ErrForbidden:
		return http.StatusForbidden
	case utils.ErrUnauthorized:
		return http.StatusUnauthorized
	case utils.ErrNotFound:
		return http.StatusNotFound
	case utils.ErrInvalid:
		return http.StatusBadRequest
	case utils.ErrAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// StatusToError is the reverse of ErrorToStatus. It returns nil for statuses
// with no matching sentinel error.
func StatusToError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return utils.ErrInvalid
	case http.StatusUnauthorized:
		return utils.ErrUnauthorized
	case http.StatusForbidden:
		return utils.ErrForbidden
	case http.StatusNotFound:
		return utils.ErrNotFound
	case http.StatusConflict:
		return utils.ErrAlreadyExists
	default:
		return nil
	}
}

// WriteJSONStatus encodes and writes out an object, with a custom response
// status code.
func WriteJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// WriteJSON encodes and writes out an object, with a 200 response status code.
func WriteJSON(w http.ResponseWriter, v interface{}) error {
	return WriteJSONStatus(w, http.StatusOK, v)
}
