// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type loggable struct{}

func (loggable) Loggable() []interface{} {
	return []interface{}{"token", "****abcd", "json_fields", "a,b"}
}

func newObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLogger(zap.New(core)), logs
}

func TestLoggerWith(t *testing.T) {
	l, logs := newObservedLogger()

	l.With("method", "GET", loggable{}, "status", 200).
		WithError(errors.New("boom")).
		Debugw("Request completed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Request completed", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"method":      "GET",
		"token":       "****abcd",
		"json_fields": "a,b",
		"status":      int64(200),
		"error":       "boom",
	}, entries[0].ContextMap())
}

func TestLoggerExpandsLoggableInline(t *testing.T) {
	l, logs := newObservedLogger()
	l.Infow("Using config", "path", "/tmp/x.yaml", loggable{})
	l.Errorw("Command failed", loggable{})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, map[string]interface{}{
		"path":        "/tmp/x.yaml",
		"token":       "****abcd",
		"json_fields": "a,b",
	}, entries[0].ContextMap())
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "****abcd", entries[1].ContextMap()["token"])
}

func TestLoggerWithNilError(t *testing.T) {
	l, logs := newObservedLogger()
	l.WithError(nil).Debugw("ok")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].ContextMap())
}

func TestLoggerWithBadKey(t *testing.T) {
	l, logs := newObservedLogger()
	l.With(42, "ignored").Infow("x")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]interface{}{
		"log_error": "expected a string key or HasLoggable, found int",
	}, entries[0].ContextMap())
}

func TestLogKeys(t *testing.T) {
	assert.Equal(t, "a,b", LogKeys(map[string]interface{}{"b": 1, "a": 2}))
	assert.Equal(t, "", LogKeys(nil))
}

func TestLastN(t *testing.T) {
	assert.Equal(t, "****efgh", LastN("abcdefgh", 4))
	assert.Equal(t, "abc", LastN("abc", 4))
	assert.Equal(t, "", LastN("", 4))
}

func TestNewError(t *testing.T) {
	assert.Equal(t, ErrNotFound, NewNotFoundError())

	err := NewInvalidError("bad %s", "input")
	assert.Equal(t, "bad input: invalid input", err.Error())
	assert.True(t, errors.Is(err, ErrInvalid))

	err = NewForbiddenError(errors.New("no access"))
	assert.Equal(t, "no access: forbidden", err.Error())
	assert.Equal(t, ErrForbidden, errors.Cause(err))
}
