// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-api-go/mmclient"
)

var showHeaders bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&showHeaders, "headers", "i", false, "print the response status and headers")
}

type JSONPalette struct {
	Name    aurora.Color
	String  aurora.Color
	Number  aurora.Color
	Boolean aurora.Color
	Null    aurora.Color
	Symbol  aurora.Color
}

var defaultJSONPalette = JSONPalette{
	Name:    aurora.BlueFg,
	String:  aurora.BrownFg,
	Number:  aurora.CyanFg,
	Boolean: aurora.MagentaFg,
	Null:    aurora.RedFg | aurora.BoldFm,
	Symbol:  aurora.GrayFg,
}

type HeaderPalette struct {
	Status         aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Status:         aurora.BrownFg | aurora.BoldFm,
	FieldName:      aurora.GrayFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.GrayFg,
}

// Printer writes API responses, indenting JSON bodies and coloring them
// when enabled.
type Printer struct {
	writer        io.Writer
	aurora        aurora.Aurora
	jsonPalette   *JSONPalette
	headerPalette *HeaderPalette
	headers       bool
}

// newPrinter colors the output only when w is a terminal.
func newPrinter(w io.Writer) *Printer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return NewPrinter(w, color, showHeaders)
}

func NewPrinter(w io.Writer, color, headers bool) *Printer {
	return &Printer{
		writer:        w,
		aurora:        aurora.NewAurora(color),
		jsonPalette:   &defaultJSONPalette,
		headerPalette: &defaultHeaderPalette,
		headers:       headers,
	}
}

func (p *Printer) PrintResponse(resp *mmclient.Response) error {
	if p.headers {
		p.printHeader(resp)
	}
	return p.PrintBody(resp.Body, resp.Header.Get("Content-Type"))
}

func (p *Printer) printHeader(resp *mmclient.Response) {
	status := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	fmt.Fprintln(p.writer, p.aurora.Colorize(status, p.headerPalette.Status))

	var names []string
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range resp.Header[name] {
			fmt.Fprintf(p.writer, "%s%s %s\n",
				p.aurora.Colorize(name, p.headerPalette.FieldName),
				p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
				p.aurora.Colorize(value, p.headerPalette.FieldValue))
		}
	}
	fmt.Fprintln(p.writer)
}

func isJSON(contentType string) bool {
	contentType = strings.TrimSpace(contentType)
	if semicolon := strings.Index(contentType, ";"); semicolon != -1 {
		contentType = contentType[:semicolon]
	}
	return contentType == "application/json"
}

// PrintBody prints JSON bodies indented, text bodies as they are, and only
// the size of anything else.
func (p *Printer) PrintBody(body []byte, contentType string) error {
	if len(body) == 0 {
		return nil
	}
	if !isJSON(contentType) {
		if strings.HasPrefix(contentType, "text/") || contentType == "" {
			_, err := p.writer.Write(body)
			return err
		}
		fmt.Fprintf(p.writer, "+-----------------------------------------+\n")
		fmt.Fprintf(p.writer, "| NOTE: binary data not shown (%s) |\n", formatSize(int64(len(body))))
		fmt.Fprintf(p.writer, "+-----------------------------------------+\n")
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return errors.Wrap(err, "parsing response body as JSON")
	}
	p.printValue(v, 0)
	fmt.Fprintln(p.writer)
	return nil
}

const indent = "    "

func (p *Printer) printValue(v interface{}, depth int) {
	switch tv := v.(type) {
	case map[string]interface{}:
		if len(tv) == 0 {
			p.symbol("{}")
			return
		}
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		p.symbol("{")
		fmt.Fprintln(p.writer)
		for i, k := range keys {
			fmt.Fprint(p.writer, strings.Repeat(indent, depth+1))
			fmt.Fprint(p.writer, p.aurora.Colorize(quote(k), p.jsonPalette.Name))
			p.symbol(": ")
			p.printValue(tv[k], depth+1)
			if i < len(keys)-1 {
				p.symbol(",")
			}
			fmt.Fprintln(p.writer)
		}
		fmt.Fprint(p.writer, strings.Repeat(indent, depth))
		p.symbol("}")

	case []interface{}:
		if len(tv) == 0 {
			p.symbol("[]")
			return
		}
		p.symbol("[")
		fmt.Fprintln(p.writer)
		for i, e := range tv {
			fmt.Fprint(p.writer, strings.Repeat(indent, depth+1))
			p.printValue(e, depth+1)
			if i < len(tv)-1 {
				p.symbol(",")
			}
			fmt.Fprintln(p.writer)
		}
		fmt.Fprint(p.writer, strings.Repeat(indent, depth))
		p.symbol("]")

	case string:
		fmt.Fprint(p.writer, p.aurora.Colorize(quote(tv), p.jsonPalette.String))
	case json.Number:
		fmt.Fprint(p.writer, p.aurora.Colorize(tv.String(), p.jsonPalette.Number))
	case bool:
		fmt.Fprint(p.writer, p.aurora.Colorize(fmt.Sprint(tv), p.jsonPalette.Boolean))
	case nil:
		fmt.Fprint(p.writer, p.aurora.Colorize("null", p.jsonPalette.Null))
	}
}

func (p *Printer) symbol(s string) {
	fmt.Fprint(p.writer, p.aurora.Colorize(s, p.jsonPalette.Symbol))
}

func quote(s string) string {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
