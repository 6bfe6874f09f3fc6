/*
Copyright (c) the purl authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package render writes purl tool results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	packageurl "github.com/aboutcode-org/packageurl-go"
)

// Format is an output format.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts text, json and yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", errors.Errorf("unknown output format %q", s)
}

// Validation is the outcome of validating one purl.
type Validation struct {
	Purl        string                  `json:"purl" yaml:"purl"`
	Diagnostics []packageurl.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// Renderer writes results to an io.Writer.
type Renderer struct {
	w      io.Writer
	format Format
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
	green  *color.Color
}

// New returns a Renderer. Colors are only used for the text format and when
// useColor is set.
func New(w io.Writer, format Format, useColor bool) *Renderer {
	r := &Renderer{
		w:      w,
		format: format,
		red:    color.New(color.FgRed, color.Bold),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{r.red, r.yellow, r.cyan, r.green} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// componentOrder is the order of ToMap keys in text output.
var componentOrder = []string{"scheme", "type", "namespace", "name", "version", "qualifiers", "subpath"}

// Components writes the components of each purl.
func (r *Renderer) Components(purls []packageurl.PackageURL) error {
	maps := make([]map[string]any, len(purls))
	for i, p := range purls {
		maps[i] = p.ToMap()
	}
	if r.format != Text {
		return r.encode(maps)
	}
	for i, p := range purls {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		m := maps[i]
		for _, key := range componentOrder {
			if m[key] == nil {
				continue
			}
			value := m[key]
			if key == "qualifiers" {
				value = p.Qualifiers.String()
			}
			fmt.Fprintf(r.w, "%s: %v\n", r.cyan.Sprint(key), value)
		}
	}
	return nil
}

// Strings writes one string per line, or a list for JSON and YAML.
func (r *Renderer) Strings(ss []string) error {
	if r.format != Text {
		return r.encode(ss)
	}
	for _, s := range ss {
		fmt.Fprintln(r.w, s)
	}
	return nil
}

// Validations writes diagnostics grouped by purl.
func (r *Renderer) Validations(vs []Validation) error {
	if r.format != Text {
		return r.encode(vs)
	}
	for _, v := range vs {
		if len(v.Diagnostics) == 0 {
			fmt.Fprintf(r.w, "%s %s\n", r.green.Sprint("ok"), v.Purl)
			continue
		}
		fmt.Fprintln(r.w, v.Purl)
		for _, d := range v.Diagnostics {
			line := d.Message
			if d.Component != "" {
				line = d.Component + ": " + line
			}
			fmt.Fprintf(r.w, "  %s %s\n", r.severity(d.Severity), line)
		}
	}
	return nil
}

func (r *Renderer) severity(s packageurl.Severity) string {
	switch s {
	case packageurl.SeverityError:
		return r.red.Sprint(s)
	case packageurl.SeverityWarning:
		return r.yellow.Sprint(s)
	default:
		return r.cyan.Sprint(s)
	}
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case JSON:
		e := json.NewEncoder(r.w)
		e.SetIndent("", "  ")
		return errors.Wrap(e.Encode(v), "encoding json")
	case YAML:
		e := yaml.NewEncoder(r.w)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(e.Close(), "encoding yaml")
	}
	return errors.Errorf("unknown output format %q", r.format)
}
