// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"bytes"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

var (
	requestBody string
	requestForm bool
)

func init() {
	rootCmd.AddCommand(requestCmd)

	requestCmd.Flags().StringVar(&requestBody, "body", "", "raw JSON request body, replaces any body items")
	requestCmd.Flags().BoolVarP(&requestForm, "form", "f", false, "send body items as multipart form data")
}

var requestCmd = &cobra.Command{
	Use:   "request <METHOD> <path> [item...]",
	Short: "Send an arbitrary API request",
	Long: `Send an arbitrary API request. The path is relative to /api/v4.

Items:
  name=value     string body field (query parameter for GET)
  name:=json     raw JSON body field
  name==value    query parameter
  Name:value     request header
  name@file      file field, requires --form`,
	Example: `  mmapictl request GET users/me
  mmapictl request POST posts channel_id=abc message=hello
  mmapictl request GET users per_page:=10 sort==last_activity_at
  mmapictl request POST users/ids --body '["u1","u2"]'`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := parseMethod(args[0])
		if err != nil {
			return err
		}
		items, err := parseItems(args[2:], requestForm)
		if err != nil {
			return err
		}

		api, err := newAPI(true)
		if err != nil {
			return err
		}
		base := api.Base()

		req := base.NewRequest()
		attach, err := items.applyTo(req, method, requestBody)
		if err != nil {
			return err
		}

		u := base.URL(args[1])
		if len(items.query) > 0 {
			u += "?" + items.query.Encode()
		}
		resp, err := base.Request(cmd.Context(), u, method, req, attach)
		return respond(cmd, resp, err)
	},
}

func parseMethod(s string) (mmclient.Method, error) {
	switch m := mmclient.Method(strings.ToUpper(s)); m {
	case mmclient.GET, mmclient.POST, mmclient.PUT, mmclient.PATCH, mmclient.DEL:
		return m, nil
	case "DELETE":
		return mmclient.DEL, nil
	default:
		return "", errors.Errorf("unsupported method %q", s)
	}
}

type requestItems struct {
	fields  map[string]interface{}
	files   map[string]string
	query   url.Values
	headers map[string]string
	form    bool
}

// parseItems reads httpie-style request items. Separators are matched at
// their first occurrence, so values may contain any of them.
func parseItems(args []string, form bool) (*requestItems, error) {
	items := &requestItems{
		fields:  map[string]interface{}{},
		files:   map[string]string{},
		query:   url.Values{},
		headers: map[string]string{},
		form:    form,
	}

	for _, arg := range args {
		if err := items.parse(arg); err != nil {
			return nil, err
		}
	}
	if len(items.files) > 0 && !form {
		return nil, errors.New("file items cannot be used in a JSON body (perhaps you meant --form?)")
	}
	return items, nil
}

func (items *requestItems) parse(s string) error {
	for i, c := range s {
		switch c {
		case ':':
			name := s[:i]
			if name == "" {
				return errors.Errorf("missing name in item: %s", s)
			}
			if strings.HasPrefix(s[i:], ":=") {
				if items.form {
					return errors.Errorf("raw JSON item cannot be used with --form: %s", s)
				}
				v, err := decodeJSON(s[i+2:])
				if err != nil {
					return errors.Wrapf(err, "invalid JSON at '%s'", name)
				}
				items.fields[name] = v
				return nil
			}
			items.headers[name] = s[i+1:]
			return nil

		case '=':
			name := s[:i]
			if name == "" {
				return errors.Errorf("missing name in item: %s", s)
			}
			if strings.HasPrefix(s[i:], "==") {
				items.query.Add(name, s[i+2:])
				return nil
			}
			items.fields[name] = s[i+1:]
			return nil

		case '@':
			name := s[:i]
			if name == "" {
				return errors.Errorf("missing name in item: %s", s)
			}
			items.files[name] = s[i+1:]
			return nil
		}
	}
	return errors.Errorf("unknown request item: %s", s)
}

// applyTo moves the items onto req and returns what to attach. For GET the
// body fields become query parameters.
func (items *requestItems) applyTo(req *mmclient.Request, method mmclient.Method, rawBody string) (mmclient.Attach, error) {
	for name, value := range items.headers {
		req.AddHeader(name, value)
	}

	if rawBody != "" {
		v, err := decodeJSON(rawBody)
		if err != nil {
			return mmclient.AttachNone, errors.Wrap(err, "invalid JSON in --body")
		}
		req.AddJSONHeader()
		req.SetJSONBody(v)
		return mmclient.AttachBody, nil
	}

	if items.form {
		req.AddMultipartHeader()
		for name, value := range items.fields {
			req.AddToMultipartFormData(name, value)
		}
		for name, path := range items.files {
			data, err := os.ReadFile(path)
			if err != nil {
				return mmclient.AttachNone, err
			}
			req.AddToMultipartFormData(name, mmclient.File{
				Name:    filepath.Base(path),
				Content: bytes.NewReader(data),
			})
		}
		return mmclient.AttachFile, nil
	}

	if len(items.fields) == 0 && method != mmclient.GET {
		return mmclient.AttachNone, nil
	}
	req.AddJSONHeader()
	for name, value := range items.fields {
		req.AddToJSON(name, value)
	}
	return mmclient.AttachBody, nil
}

// decodeJSON keeps numbers as json.Number so IDs and millisecond timestamps
// are sent back exactly as typed.
func decodeJSON(s string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after the JSON value")
	}
	return v, nil
}
