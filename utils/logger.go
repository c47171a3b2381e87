// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

const ErrorKey = "error"

// Logger is the structured logger used by the client and the CLI. Every
// method accepts HasLoggable values in place of key/value pairs.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	WithError(error) Logger
	With(args ...interface{}) Logger
}

// HasLoggable is implemented by values that know how to describe themselves
// as log key/value pairs, e.g. a pending API request or a masked identity.
type HasLoggable interface {
	Loggable() []interface{}
}

type logger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*logger)(nil)

// NewLogger wraps an existing zap logger, for applications that already
// configure zap.
func NewLogger(z *zap.Logger) Logger {
	return &logger{sugar: z.Sugar()}
}

// NewNopLogger discards everything. It is the default for a client that was
// not given a logger.
func NewNopLogger() Logger {
	return NewLogger(zap.NewNop())
}

// NewTestLogger writes to the test's log, shown only for failed or verbose
// runs.
func NewTestLogger(t testing.TB) Logger {
	return NewLogger(zaptest.NewLogger(t))
}

// NewCommandLogger logs human-readable lines to stderr, for command line
// tools.
func NewCommandLogger(level zapcore.Level) Logger {
	encodingConfig := zap.NewProductionEncoderConfig()
	encodingConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encodingConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encodingConfig.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encodingConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return NewLogger(zap.New(core))
}

func (l *logger) Debugw(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, expandWith(keysAndValues)...)
}

func (l *logger) Infow(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, expandWith(keysAndValues)...)
}

func (l *logger) Errorw(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, expandWith(keysAndValues)...)
}

func (l *logger) With(args ...interface{}) Logger {
	return &logger{sugar: l.sugar.With(expandWith(args)...)}
}

func (l *logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return &logger{sugar: l.sugar.With(ErrorKey, err.Error())}
}

// expandWith replaces HasLoggable values with their key/value pairs. A value
// in key position that is neither a string nor HasLoggable ends the list
// with a log_error entry.
func expandWith(args []interface{}) []interface{} {
	var with []interface{}

	expectKey := true
	for _, v := range args {
		lp, hasProps := v.(HasLoggable)
		_, isString := v.(string)
		switch {
		case !expectKey:
			with = append(with, v)
			expectKey = true
		case hasProps:
			with = append(with, expandWith(lp.Loggable())...)
		case !isString:
			with = append(with, "log_error", fmt.Sprintf("expected a string key or HasLoggable, found %T", v))
			return with
		default:
			with = append(with, v)
			expectKey = false
		}
	}
	return with
}

// LogKeys lists the sorted keys of a field map, so requests can be logged
// without their values.
func LogKeys(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
