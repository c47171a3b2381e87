// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"go.uber.org/zap/zapcore"

	"github.com/mattermost/mattermost-api-go/utils"
)

var log = utils.NewCommandLogger(zapcore.InfoLevel)
