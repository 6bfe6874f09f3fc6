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

package packageurl

import (
	"errors"
	"fmt"
)

// Severity ranks a Diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one finding of ValidateString.
type Diagnostic struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	Component string   `json:"component,omitempty" yaml:"component,omitempty"`
	Message   string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	if d.Component == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Component, d.Message)
}

// HasErrors reports whether any diagnostic has SeverityError.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ValidateString checks purl and returns its diagnostics, which is empty
// for a valid purl. Failures that FromString would return are reported as
// errors. In strict mode, forms that parse but are not canonical and
// violations of the type's component requirements are reported too.
func ValidateString(purl string, strict bool) []Diagnostic {
	diags := []Diagnostic{}
	raw, err := split(purl)
	if err != nil {
		return append(diags, errorDiagnostic(err))
	}
	p, err := raw.decode(purl)
	if err != nil {
		return append(diags, errorDiagnostic(err))
	}
	canonical, err := p.encode()
	if err != nil {
		return append(diags, errorDiagnostic(err))
	}
	if !strict {
		return diags
	}
	diags = append(diags, checkCanonical(raw, canonical)...)
	return append(diags, checkTypeRule(p)...)
}

func errorDiagnostic(err error) Diagnostic {
	var e *Error
	if errors.As(err, &e) {
		return Diagnostic{Severity: SeverityError, Component: e.Component, Message: e.Error()}
	}
	return Diagnostic{Severity: SeverityError, Message: err.Error()}
}

func checkCanonical(raw rawComponents, c components) []Diagnostic {
	var diags []Diagnostic
	if raw.slashes > 0 {
		diags = append(diags, Diagnostic{
			Severity:  SeverityWarning,
			Component: "scheme",
			Message:   "the scheme must not be followed by '/'",
		})
	}
	pairs := []struct {
		component, got, want string
	}{
		{"type", raw.rawType, c.typ},
		{"namespace", raw.namespace, c.namespace},
		{"name", raw.name, c.name},
		{"version", raw.version, c.version},
		{"qualifiers", raw.qualifiers, c.qualifiers},
		{"subpath", raw.subpath, c.subpath},
	}
	for _, pair := range pairs {
		if pair.got != pair.want {
			diags = append(diags, Diagnostic{
				Severity:  SeverityWarning,
				Component: pair.component,
				Message:   fmt.Sprintf("%s %q is not canonical, expected %q", pair.component, pair.got, pair.want),
			})
		}
	}
	return diags
}

func checkTypeRule(p PackageURL) []Diagnostic {
	rule, known := LookupType(p.Type)
	if !known {
		return []Diagnostic{{
			Severity:  SeverityInfo,
			Component: "type",
			Message:   fmt.Sprintf("unknown purl type %q", p.Type),
		}}
	}
	var diags []Diagnostic
	switch {
	case rule.Namespace == Required && p.Namespace == "":
		diags = append(diags, Diagnostic{
			Severity:  SeverityError,
			Component: "namespace",
			Message:   fmt.Sprintf("a namespace is required for purl type %q", p.Type),
		})
	case rule.Namespace == Prohibited && p.Namespace != "":
		diags = append(diags, Diagnostic{
			Severity:  SeverityError,
			Component: "namespace",
			Message:   fmt.Sprintf("a namespace is not allowed for purl type %q", p.Type),
		})
	}
	if rule.VersionRequired && p.Version == "" {
		diags = append(diags, Diagnostic{
			Severity:  SeverityError,
			Component: "version",
			Message:   fmt.Sprintf("a version is required for purl type %q", p.Type),
		})
	}
	return diags
}
