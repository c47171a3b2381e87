// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/mattermost/mattermost-api-go/utils/httputils"
)

// TransportError is returned when a request never completed: the connection
// was refused, DNS failed, the context was canceled, and so on.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
func (e *TransportError) Cause() error  { return e.Err }

// ApplicationError is returned when the server answered with a non-2xx
// status. AppError is set when the body is a Mattermost error document.
type ApplicationError struct {
	StatusCode int
	Body       []byte
	AppError   *model.AppError
}

func newApplicationError(status int, body []byte) *ApplicationError {
	e := &ApplicationError{
		StatusCode: status,
		Body:       body,
	}
	appErr := model.AppError{}
	if err := json.Unmarshal(body, &appErr); err == nil && (appErr.Id != "" || appErr.Message != "") {
		e.AppError = &appErr
	}
	return e
}

func (e *ApplicationError) Error() string {
	if e.AppError != nil {
		if e.AppError.Id != "" {
			return fmt.Sprintf("status %d: %s: %s", e.StatusCode, e.AppError.Id, e.AppError.Message)
		}
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.AppError.Message)
	}
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, body)
}

// Unwrap maps well-known statuses onto the utils sentinel errors, so that
// errors.Is(err, utils.ErrNotFound) works on API results.
func (e *ApplicationError) Unwrap() error {
	return httputils.StatusToError(e.StatusCode)
}

// AsApplicationError returns the ApplicationError in err's chain, if any.
func AsApplicationError(err error) (*ApplicationError, bool) {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsTransportError reports whether err is a transport-level failure.
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
