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
	"net/url"
	"strings"
)

const scheme = "pkg"

// rawComponents are the parts of a purl string before normalization.
type rawComponents struct {
	// rawType is the type as written; typ is lower cased.
	rawType    string
	typ        string
	namespace  string
	name       string
	version    string
	qualifiers string
	subpath    string
	// slashes counts the '/' between the scheme and the type.
	slashes int
}

// FromString parses a package url string. All components of the result are
// normalized and decoded.
func FromString(purl string) (PackageURL, error) {
	raw, err := split(purl)
	if err != nil {
		return PackageURL{}, err
	}
	return raw.decode(purl)
}

// split cuts a purl string into its raw components.
func split(purl string) (rawComponents, error) {
	var r rawComponents
	prefix, rest, ok := strings.Cut(purl, ":")
	if !ok || prefix != scheme {
		return r, newError(KindMissingScheme, "scheme", "purl is missing the required %q scheme component: %q", scheme, purl)
	}

	// Tolerate pkg:// and friends.
	trimmed := strings.TrimLeft(rest, "/")
	r.slashes = len(rest) - len(trimmed)

	typ, rest, ok := strings.Cut(trimmed, "/")
	if !ok || typ == "" {
		return r, newError(KindMissingType, "type", "purl is missing the required type component: %q", purl)
	}
	if !validIdentifier(typ) {
		return r, newError(KindInvalidType, "type",
			"purl type must be composed only of ASCII letters and numbers, '.', '-' and '_': %q", typ)
	}
	if isDigit(typ[0]) {
		return r, newError(KindInvalidType, "type", "purl type cannot start with a number: %q", typ)
	}
	r.rawType = typ
	r.typ = strings.ToLower(typ)

	u, err := url.Parse("purl:" + rest)
	if err != nil {
		return r, newError(KindInvalidRemainder, "", "invalid purl remainder %q: %v", rest, unwrapURLError(err))
	}
	r.qualifiers = u.RawQuery
	r.subpath = u.EscapedFragment()
	path := u.Opaque
	if path == "" {
		path = u.EscapedPath()
		// Only a remainder starting with "//" has a host.
		if u.Host != "" {
			path = u.Host + path
		}
	}
	path = strings.TrimLeft(path, "/")

	scoped := false
	if r.typ == "npm" && strings.HasPrefix(path, "@") {
		r.namespace, path, _ = strings.Cut(path, "/")
		scoped = true
	}

	if i := strings.LastIndex(path, "@"); i >= 0 {
		r.version = path[i+1:]
		path = path[:i]
	}

	var segments []string
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	switch n := len(segments); n {
	case 0:
	case 1:
		r.name = segments[0]
	default:
		if !scoped {
			r.namespace = strings.Join(segments[:n-1], "/")
		}
		r.name = segments[n-1]
	}
	if r.name == "" {
		return r, newError(KindMissingName, "name", "purl is missing the required name component: %q", purl)
	}
	return r, nil
}

// decode normalizes raw components into a PackageURL.
func (r rawComponents) decode(purl string) (PackageURL, error) {
	q, err := ParseQualifiers(r.qualifiers)
	if err != nil {
		return PackageURL{}, err
	}
	if q, err = NormalizeQualifiers(q, Decode); err != nil {
		return PackageURL{}, err
	}
	typ := NormalizeType(r.typ, Decode)
	name := NormalizeName(r.name, RawQualifiers(r.qualifiers), typ, Decode)
	if name == "" {
		return PackageURL{}, newError(KindMissingName, "name", "purl is missing the required name component: %q", purl)
	}
	return PackageURL{
		Type:       typ,
		Namespace:  NormalizeNamespace(r.namespace, typ, Decode),
		Name:       name,
		Version:    NormalizeVersion(r.version, typ, Decode),
		Qualifiers: q,
		Subpath:    NormalizeSubpath(r.subpath, Decode),
	}, nil
}

// unwrapURLError drops the synthetic URL that url.Parse repeats in its
// errors.
func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
