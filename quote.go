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

// Direction selects how component values are transformed while they are
// normalized.
type Direction uint8

const (
	// Encode percent-encodes values for the canonical string form.
	Encode Direction = iota
	// Decode percent-decodes values read from a purl string.
	Decode
	// Verbatim leaves values as they are.
	Verbatim
)

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	default:
		return "verbatim"
	}
}

// Quoter returns the segment transformation for d: Quote, Unquote or the
// identity function.
func (d Direction) Quoter() func(string) string {
	switch d {
	case Encode:
		return Quote
	case Decode:
		return Unquote
	default:
		return func(s string) string { return s }
	}
}

// Quote percent-encodes a single purl segment. Spaces and '+' are always
// escaped as %20 and %2B, and ':' is always left as is.
func Quote(s string) string {
	if s == "" {
		return ""
	}
	outer := strings.Split(s, " ")
	for i, part := range outer {
		inner := strings.Split(part, "+")
		for j, piece := range inner {
			inner[j] = strings.ReplaceAll(url.QueryEscape(piece), "%3A", ":")
		}
		outer[i] = strings.Join(inner, "%2B")
	}
	return strings.Join(outer, "%20")
}

// Unquote decodes the %XX escapes of a purl segment. A '+' stays a '+', and a
// '%' that does not start a valid escape is kept literally.
func Unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isEscape(s, i) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// mapUnescaped applies f to the text around the %XX escapes of s, leaving the
// escapes themselves unchanged.
func mapUnescaped(s string, f func(string) string) string {
	if !strings.Contains(s, "%") {
		return f(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i := 0; i < len(s); {
		if isEscape(s, i) {
			b.WriteString(f(s[start:i]))
			b.WriteString(s[i : i+3])
			i += 3
			start = i
			continue
		}
		i++
	}
	b.WriteString(f(s[start:]))
	return b.String()
}

func isEscape(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2])
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
