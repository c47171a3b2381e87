// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattermost/mattermost-api-go/utils"
)

func TestIsValidHttpUrl(t *testing.T) {
	t.Parallel()

	for name, test := range map[string]struct {
		URL           string
		ExpectedError bool
	}{

		"empty url": {
			"",
			true,
		},
		"bad url": {
			"bad url",
			true,
		},
		"relative url": {
			"/api/test",
			true,
		},
		"relative url ending with slash": {
			"/some/url/",
			true,
		},
		"url with invalid scheme": {
			"htp://mattermost.com",
			true,
		},
		"url with just http": {
			"http://",
			true,
		},
		"url with just https": {
			"https://",
			true,
		},
		"url with extra slashes": {
			"https:///mattermost.com",
			true,
		},
		"correct url with http scheme": {
			"http://mattemost.com",
			false,
		},
		"correct url with https scheme": {
			"https://mattermost.com/api/test",
			false,
		},
		"correct url with port": {
			"https://localhost:1111/test",
			false,
		},
		"correct url without scheme": {
			"mattermost.com/some/url/",
			true,
		},
		"correct url with extra slashes": {
			"https://mattermost.com/some//url",
			false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := utils.IsValidHTTPURL(test.URL)

			if test.ExpectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	for name, test := range map[string]struct {
		Base     string
		Elems    []string
		Expected string
	}{
		"no elements":           {"https://mm.test/api/v4/", nil, "https://mm.test/api/v4"},
		"single element":        {"https://mm.test/api/v4", []string{"bots"}, "https://mm.test/api/v4/bots"},
		"slashes are collapsed": {"https://mm.test/api/v4/", []string{"/users/", "me"}, "https://mm.test/api/v4/users/me"},
		"empty skipped":         {"https://mm.test", []string{"", "hooks"}, "https://mm.test/hooks"},
		"trailing slash kept":   {"https://mm.test", []string{"emoji/"}, "https://mm.test/emoji/"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.Expected, utils.JoinURL(test.Base, test.Elems...))
		})
	}
}
