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

import "strings"

// NormalizeType trims and lower cases a purl type.
func NormalizeType(v string, d Direction) string {
	return strings.ToLower(d.Quoter()(strings.TrimSpace(v)))
}

// NormalizeNamespace returns the canonical namespace of type typ: outer
// slashes stripped, the type's case rule applied, and blank segments dropped
// before each segment is quoted per d.
func NormalizeNamespace(v, typ string, d Direction) string {
	v = strings.Trim(strings.TrimSpace(v), "/")
	if v == "" {
		return ""
	}
	rule, _ := LookupType(typ)
	// Only text read from a purl string is encoded before quoting.
	v = rule.NamespaceCase.apply(v, d == Decode)
	var segments []string
	for _, seg := range strings.Split(v, "/") {
		if seg = segment(seg, d); seg != "" {
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, "/")
}

// segment trims one path segment and quotes it per d. Decoded segments are
// trimmed after decoding, so an encoded blank like "%20" is dropped as the
// encoder would drop it.
func segment(seg string, d Direction) string {
	if d == Decode {
		return strings.TrimSpace(Unquote(seg))
	}
	if seg = strings.TrimSpace(seg); seg == "" {
		return ""
	}
	return d.Quoter()(seg)
}

// NormalizeName returns the canonical name of type typ. The value is quoted
// per d before it is trimmed, so the type rules see text in the target
// representation. q is only consulted by qualifier aware rules (mlflow) and
// may be nil.
func NormalizeName(v string, q QualifierSource, typ string, d Direction) string {
	if v == "" {
		return ""
	}
	name := strings.Trim(strings.TrimSpace(d.Quoter()(v)), "/")
	if name == "" {
		return ""
	}
	rule, _ := LookupType(typ)
	encoded := d == Encode
	if rule.QualifiedName != nil {
		return rule.QualifiedName(name, q, encoded)
	}
	name = rule.NameCase.apply(name, encoded)
	if rule.NameRule != nil {
		name = rule.NameRule(name, encoded)
	}
	return name
}

// NormalizeVersion returns the canonical version of type typ. Decoded
// versions are trimmed again after decoding.
func NormalizeVersion(v, typ string, d Direction) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = d.Quoter()(v)
	if d == Decode {
		v = strings.TrimSpace(v)
	}
	rule, _ := LookupType(typ)
	return rule.VersionCase.apply(v, d == Encode)
}

// NormalizeSubpath drops blank, "." and ".." segments and quotes the rest
// per d. Segments are judged by their decoded value, so "%2E%2E" is dropped
// like "..".
func NormalizeSubpath(v string, d Direction) string {
	if v == "" {
		return ""
	}
	quote := d.Quoter()
	var segments []string
	for _, seg := range strings.Split(v, "/") {
		out := quote(seg)
		plain := seg
		if d == Decode {
			plain = out
		}
		if strings.TrimSpace(plain) == "" || plain == "." || plain == ".." {
			continue
		}
		segments = append(segments, out)
	}
	return strings.Join(segments, "/")
}

// components holds the normalized parts of a purl in one representation.
type components struct {
	typ        string
	namespace  string
	name       string
	version    string
	qualifiers string
	subpath    string
}

// encode normalizes p for output. Type and name must survive normalization.
func (p PackageURL) encode() (components, error) {
	c := components{typ: NormalizeType(p.Type, Encode)}
	switch {
	case c.typ == "":
		return components{}, newError(KindArgument, "type", "a purl type is required")
	case !validIdentifier(c.typ):
		return components{}, newError(KindInvalidType, "type",
			"purl type must be composed only of ASCII letters and numbers, '.', '-' and '_': %q", c.typ)
	case isDigit(c.typ[0]):
		return components{}, newError(KindInvalidType, "type", "purl type cannot start with a number: %q", c.typ)
	}
	c.name = NormalizeName(p.Name, p.Qualifiers, c.typ, Encode)
	if c.name == "" {
		return components{}, newError(KindArgument, "name", "a purl name is required")
	}
	qualifiers, err := EncodeQualifiers(p.Qualifiers)
	if err != nil {
		return components{}, err
	}
	c.namespace = NormalizeNamespace(p.Namespace, c.typ, Encode)
	c.version = NormalizeVersion(p.Version, c.typ, Encode)
	c.qualifiers = qualifiers
	c.subpath = NormalizeSubpath(p.Subpath, Encode)
	return c, nil
}

func (c components) String() string {
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteByte(':')
	b.WriteString(c.typ)
	b.WriteByte('/')
	if c.namespace != "" {
		b.WriteString(c.namespace)
		b.WriteByte('/')
	}
	b.WriteString(c.name)
	if c.version != "" {
		b.WriteByte('@')
		b.WriteString(c.version)
	}
	if c.qualifiers != "" {
		b.WriteByte('?')
		b.WriteString(c.qualifiers)
	}
	if c.subpath != "" {
		b.WriteByte('#')
		b.WriteString(c.subpath)
	}
	return b.String()
}
