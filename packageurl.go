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

// Package packageurl implements the package-url spec: parsing, normalization,
// validation and canonical serialization of purls of the form
//
//	pkg:type/namespace/name@version?qualifiers#subpath
package packageurl

import "strings"

// PackageURL is the struct representation of the parts that make a package
// url. Values are treated as immutable: every method works on a copy and
// normalizes on demand.
type PackageURL struct {
	Type       string
	Namespace  string
	Name       string
	Version    string
	Qualifiers Qualifiers
	Subpath    string
}

// NewPackageURL creates a new PackageURL from unnormalized components. Only
// the presence of type and name is checked here; everything else is checked
// when the value is serialized.
func NewPackageURL(purlType, namespace, name, version string,
	qualifiers Qualifiers, subpath string) (*PackageURL, error) {

	if strings.TrimSpace(purlType) == "" {
		return nil, newError(KindArgument, "type", "a purl type is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, newError(KindArgument, "name", "a purl name is required")
	}
	return &PackageURL{
		Type:       purlType,
		Namespace:  namespace,
		Name:       name,
		Version:    version,
		Qualifiers: qualifiers,
		Subpath:    subpath,
	}, nil
}

// Canonical returns the canonical string form of p. It fails when the
// qualifiers do not validate or the type or name is missing.
func (p PackageURL) Canonical() (string, error) {
	c, err := p.encode()
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// ToString returns the canonical string form of p, or "" if p cannot be
// serialized. Use Canonical to get the reason.
func (p PackageURL) ToString() string {
	s, _ := p.Canonical()
	return s
}

func (p PackageURL) String() string {
	return p.ToString()
}

// Validate reports the error Canonical would return.
func (p PackageURL) Validate() error {
	_, err := p.encode()
	return err
}

// Normalize returns p as FromString would produce it from p's canonical form.
func (p PackageURL) Normalize() (PackageURL, error) {
	s, err := p.Canonical()
	if err != nil {
		return PackageURL{}, err
	}
	return FromString(s)
}

// ToMap returns the components of p keyed by scheme, type, namespace, name,
// version, qualifiers and subpath. Absent components are nil.
func (p PackageURL) ToMap() map[string]any {
	optional := func(s string) any {
		if s == "" {
			return nil
		}
		return s
	}
	var qualifiers any
	if len(p.Qualifiers) > 0 {
		qualifiers = p.Qualifiers.Map()
	}
	return map[string]any{
		"scheme":     scheme,
		"type":       optional(p.Type),
		"namespace":  optional(p.Namespace),
		"name":       optional(p.Name),
		"version":    optional(p.Version),
		"qualifiers": qualifiers,
		"subpath":    optional(p.Subpath),
	}
}

// MarshalText implements encoding.TextMarshaler with the canonical form.
func (p PackageURL) MarshalText() ([]byte, error) {
	s, err := p.Canonical()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using FromString.
func (p *PackageURL) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
