// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

func IsValidHTTPURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("URL schema must either be %q or %q", "http", "https")
	}

	if u.Host == "" {
		return errors.New("URL must contain a host")
	}

	return nil
}

// JoinURL joins a base URL and path elements with single slashes. Empty
// elements are skipped; a trailing slash on the last element is kept.
func JoinURL(base string, elems ...string) string {
	out := strings.TrimRight(base, "/")
	for _, e := range elems {
		if e == "" {
			continue
		}
		out += "/" + strings.TrimLeft(e, "/")
	}
	return out
}
