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

import "fmt"

// Kind classifies the failures reported by this package.
type Kind uint8

const (
	kindAny Kind = iota
	KindMissingScheme
	KindMissingType
	KindInvalidType
	KindMissingName
	KindInvalidRemainder
	KindInvalidQualifierString
	KindInvalidQualifierKey
	KindArgument
)

var kindNames = map[Kind]string{
	kindAny:                    "invalid package url",
	KindMissingScheme:          "missing scheme",
	KindMissingType:            "missing type",
	KindInvalidType:            "invalid type",
	KindMissingName:            "missing name",
	KindInvalidRemainder:       "invalid remainder",
	KindInvalidQualifierString: "invalid qualifier",
	KindInvalidQualifierKey:    "invalid qualifier key",
	KindArgument:               "invalid argument",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is returned by every failing parse, normalization or construction.
// Component names the purl component at fault when there is one.
type Error struct {
	Kind      Kind
	Component string
	Reason    string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return e.Reason
}

// Is reports whether target is a sentinel of the same Kind. ErrInvalidPackageURL
// matches every kind except KindArgument.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind == kindAny {
		return e.Kind != KindArgument
	}
	return t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrInvalidPackageURL      = &Error{Kind: kindAny}
	ErrMissingScheme          = &Error{Kind: KindMissingScheme}
	ErrMissingType            = &Error{Kind: KindMissingType}
	ErrInvalidType            = &Error{Kind: KindInvalidType}
	ErrMissingName            = &Error{Kind: KindMissingName}
	ErrInvalidRemainder       = &Error{Kind: KindInvalidRemainder}
	ErrInvalidQualifierString = &Error{Kind: KindInvalidQualifierString}
	ErrInvalidQualifierKey    = &Error{Kind: KindInvalidQualifierKey}
	ErrArgument               = &Error{Kind: KindArgument}
)

func newError(kind Kind, component, format string, args ...any) *Error {
	return &Error{Kind: kind, Component: component, Reason: fmt.Sprintf(format, args...)}
}
