// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package mmclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

type bodyTuple struct {
	body          io.Reader
	contentLength int64
	contentType   string
}

// buildURL encodes fields as query parameters of rawURL, keeping any query
// the caller already put there.
func buildURL(rawURL string, fields map[string]interface{}) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing URL")
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return "", errors.Wrap(err, "parsing query string")
	}
	for _, key := range sortedKeys(fields) {
		values, err := queryValues(fields[key])
		if err != nil {
			return "", errors.Wrapf(err, "encoding query parameter '%s'", key)
		}
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func queryValues(v interface{}) ([]string, error) {
	switch tv := v.(type) {
	case nil:
		// null has no query representation, the key is dropped
		return nil, nil
	case string:
		return []string{tv}, nil
	case bool:
		return []string{strconv.FormatBool(tv)}, nil
	case float64:
		// 'f' keeps millisecond timestamps out of exponent notation
		return []string{strconv.FormatFloat(tv, 'f', -1, 64)}, nil
	case float32:
		return []string{strconv.FormatFloat(float64(tv), 'f', -1, 32)}, nil
	case []string:
		return tv, nil
	case fmt.Stringer:
		return []string{tv.String()}, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var out []string
		for i := 0; i < rv.Len(); i++ {
			vv, err := queryValues(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out = append(out, vv...)
		}
		return out, nil
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, nil
		}
		return queryValues(rv.Elem().Interface())
	case reflect.Map, reflect.Struct:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return []string{string(data)}, nil
	default:
		return []string{fmt.Sprintf("%v", v)}, nil
	}
}

func buildJSONBody(v interface{}) (bodyTuple, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return bodyTuple{}, errors.Wrap(err, "marshaling JSON of HTTP body")
	}
	return bodyTuple{
		body:          bytes.NewReader(body),
		contentLength: int64(len(body)),
		contentType:   ContentTypeJSON,
	}, nil
}

// buildMultipartBody writes files as parts of a multipart/form-data body.
// Plain form fields (the JSON fields, when also attached) come first.
func buildMultipartBody(files, fields map[string]interface{}) (bodyTuple, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, key := range sortedKeys(fields) {
		values, err := queryValues(fields[key])
		if err != nil {
			return bodyTuple{}, errors.Wrapf(err, "encoding form field '%s'", key)
		}
		for _, v := range values {
			if err = w.WriteField(key, v); err != nil {
				return bodyTuple{}, errors.Wrapf(err, "writing form field '%s'", key)
			}
		}
	}

	for _, key := range sortedKeys(files) {
		if err := writePart(w, key, files[key]); err != nil {
			return bodyTuple{}, errors.Wrapf(err, "writing multipart field '%s'", key)
		}
	}

	if err := w.Close(); err != nil {
		return bodyTuple{}, errors.Wrap(err, "closing multipart body")
	}
	return bodyTuple{
		body:          bytes.NewReader(buf.Bytes()),
		contentLength: int64(buf.Len()),
		contentType:   w.FormDataContentType(),
	}, nil
}

func writePart(w *multipart.Writer, key string, value interface{}) error {
	switch v := value.(type) {
	case string:
		return w.WriteField(key, v)
	case bool:
		return w.WriteField(key, strconv.FormatBool(v))
	case []byte:
		return copyPart(w, key, key, bytes.NewReader(v))
	case File:
		name := v.Name
		if name == "" {
			name = key
		}
		return copyPart(w, key, name, v.Content)
	case *File:
		if v == nil {
			return errors.New("nil file")
		}
		return writePart(w, key, *v)
	case io.Reader:
		return copyPart(w, key, key, v)
	default:
		return errors.Errorf("unsupported multipart value of type %T", value)
	}
}

func copyPart(w *multipart.Writer, key, filename string, r io.Reader) error {
	if r == nil {
		return errors.New("nil file content")
	}
	part, err := w.CreateFormFile(key, filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, r)
	return err
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
