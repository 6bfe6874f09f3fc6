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
	"sort"
	"strings"
)

// Qualifier is one key=value pair of a package url.
type Qualifier struct {
	Key   string
	Value string
}

// Qualifiers is the ordered list of key=value pairs of a package url.
type Qualifiers []Qualifier

// QualifiersFromMap converts a map to Qualifiers sorted by key.
func QualifiersFromMap(mm map[string]string) Qualifiers {
	q := make(Qualifiers, 0, len(mm))
	for k, v := range mm {
		q = append(q, Qualifier{Key: k, Value: v})
	}
	sort.Slice(q, func(i, j int) bool { return q[i].Key < q[j].Key })
	return q
}

// Map converts q to a map. Later duplicates win.
func (q Qualifiers) Map() map[string]string {
	m := make(map[string]string, len(q))
	for _, kv := range q {
		m[kv.Key] = kv.Value
	}
	return m
}

// Get returns the value of the first qualifier named key, ignoring case.
func (q Qualifiers) Get(key string) (string, bool) {
	for _, kv := range q {
		if strings.EqualFold(kv.Key, key) {
			return kv.Value, true
		}
	}
	return "", false
}

// String joins q as key=value pairs in their current order, without any
// normalization. Use EncodeQualifiers for the canonical form.
func (q Qualifiers) String() string {
	parts := make([]string, 0, len(q))
	for _, kv := range q {
		parts = append(parts, kv.Key+"="+kv.Value)
	}
	return strings.Join(parts, "&")
}

func (q Qualifiers) repositoryHint() string {
	v, _ := q.Get("repository_url")
	return v
}

// RawQualifiers is the undecoded qualifiers section of a purl string.
type RawQualifiers string

func (r RawQualifiers) repositoryHint() string {
	return string(r)
}

// QualifierSource is what a qualifier aware name rule can inspect: either
// Qualifiers or RawQualifiers.
type QualifierSource interface {
	repositoryHint() string
}

// ParseQualifiers splits the qualifiers section of a purl string into its
// pairs. Keys and values are returned as they appear.
func ParseQualifiers(s string) (Qualifiers, error) {
	if s == "" {
		return Qualifiers{}, nil
	}
	pairs := strings.Split(s, "&")
	q := make(Qualifiers, 0, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, newError(KindInvalidQualifierString, "qualifiers",
				"invalid qualifier %q: qualifiers must be a string of key=value pairs", pair)
		}
		q = append(q, Qualifier{Key: k, Value: v})
	}
	return q, nil
}

// NormalizeQualifiers returns the canonical mapping view of q: pairs with a
// blank key or value dropped, keys lower cased and validated, values quoted
// per d, sorted by key. The result is never nil.
func NormalizeQualifiers(q Qualifiers, d Direction) (Qualifiers, error) {
	quote := d.Quoter()
	out := make(Qualifiers, 0, len(q))
	seen := make(map[string]int, len(q))
	for _, kv := range q {
		key := strings.ToLower(strings.TrimSpace(kv.Key))
		if key == "" || strings.TrimSpace(kv.Value) == "" {
			continue
		}
		value := quote(kv.Value)
		if i, ok := seen[key]; ok {
			out[i].Value = value
			continue
		}
		seen[key] = len(out)
		out = append(out, Qualifier{Key: key, Value: value})
	}
	for _, kv := range out {
		if err := validateQualifierKey(kv.Key); err != nil {
			return nil, err
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// EncodeQualifiers returns the canonical string view of q, or "" when no
// qualifier survives normalization.
func EncodeQualifiers(q Qualifiers) (string, error) {
	norm, err := NormalizeQualifiers(q, Encode)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(norm))
	for i, kv := range norm {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, "&"), nil
}

func validateQualifierKey(key string) error {
	switch {
	case key == "":
		return newError(KindInvalidQualifierKey, "qualifiers", "a qualifier key cannot be empty")
	case strings.Contains(key, "%"):
		return newError(KindInvalidQualifierKey, "qualifiers", "a qualifier key cannot be percent encoded: %q", key)
	case strings.Contains(key, " "):
		return newError(KindInvalidQualifierKey, "qualifiers", "a qualifier key cannot contain spaces: %q", key)
	case !validIdentifier(key):
		return newError(KindInvalidQualifierKey, "qualifiers",
			"a qualifier key must be composed only of ASCII letters and numbers, '.', '-' and '_': %q", key)
	case isDigit(key[0]):
		return newError(KindInvalidQualifierKey, "qualifiers", "a qualifier key cannot start with a number: %q", key)
	}
	return nil
}

// validIdentifier reports whether s is made of [A-Za-z0-9.-_] only. Both
// types and qualifier keys use this alphabet.
func validIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', isDigit(c):
		case c == '.', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
