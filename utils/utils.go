// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

// LastN masks all but the last n characters of s, for logging secrets such
// as access tokens.
func LastN(s string, n int) string {
	out := []byte(s)
	for i := range out {
		if i < len(out)-n {
			out[i] = '*'
		}
	}
	return string(out)
}
