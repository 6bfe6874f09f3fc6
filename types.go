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

// Case is a case folding rule for a purl component.
type Case uint8

const (
	CaseKeep Case = iota
	CaseLower
	CaseUpper
)

// apply folds s. When s is percent-encoded the escapes are left untouched so
// that encoded output keeps upper case hex digits. Decoded text is folded
// as a whole: a literal "%AB" in it is not an escape.
func (c Case) apply(s string, encoded bool) string {
	var f func(string) string
	switch c {
	case CaseLower:
		f = strings.ToLower
	case CaseUpper:
		f = strings.ToUpper
	default:
		return s
	}
	if encoded {
		return mapUnescaped(s, f)
	}
	return f(s)
}

// Requirement states whether a purl type needs a component.
type Requirement uint8

const (
	Optional Requirement = iota
	Required
	Prohibited
)

// TypeRule describes how the components of one purl type are normalized.
type TypeRule struct {
	NamespaceCase Case
	NameCase      Case
	// NameRule rewrites the name after NameCase has been applied. encoded
	// reports whether name is percent-encoded.
	NameRule func(name string, encoded bool) string
	// QualifiedName, when set, replaces NameCase and NameRule. It sees the
	// qualifiers the name is normalized together with.
	QualifiedName func(name string, q QualifierSource, encoded bool) string
	VersionCase   Case

	// Namespace and VersionRequired are only checked by strict validation.
	Namespace       Requirement
	VersionRequired bool
}

var (
	lowerCase = TypeRule{NamespaceCase: CaseLower, NameCase: CaseLower}
	lowerName = TypeRule{NameCase: CaseLower}
)

// typeRules is keyed by lower case purl type. Types without special
// handling have a zero entry so that they are known to the validator.
var typeRules = map[string]TypeRule{
	"alpm":             lowerCase,
	"apk":              lowerCase,
	"bitbucket":        {NamespaceCase: CaseLower, NameCase: CaseLower, Namespace: Required},
	"bitnami":          lowerName,
	"cargo":            {Namespace: Prohibited},
	"cocoapods":        {Namespace: Prohibited},
	"composer":         {NamespaceCase: CaseLower, NameCase: CaseLower, Namespace: Required},
	"conan":            {},
	"conda":            {Namespace: Prohibited},
	"cpan":             {NamespaceCase: CaseUpper},
	"cran":             {Namespace: Prohibited, VersionRequired: true},
	"deb":              {},
	"docker":           {},
	"gem":              {Namespace: Prohibited},
	"generic":          {},
	"github":           {NamespaceCase: CaseLower, NameCase: CaseLower, Namespace: Required},
	"gitlab":           {NamespaceCase: CaseLower, NameCase: CaseLower, Namespace: Required},
	"golang":           {},
	"hackage":          {NameRule: underscoreToHyphen, Namespace: Prohibited},
	"hex":              lowerCase,
	"huggingface":      {VersionCase: CaseLower},
	"julia":            {Namespace: Prohibited},
	"luarocks":         lowerCase,
	"maven":            {Namespace: Required},
	"mlflow":           {QualifiedName: mlflowName, Namespace: Prohibited},
	"npm":              lowerName,
	"nuget":            {Namespace: Prohibited},
	"oci":              {NameCase: CaseLower, VersionCase: CaseLower, Namespace: Prohibited},
	"opam":             {Namespace: Prohibited},
	"otp":              {Namespace: Prohibited},
	"pub":              {NameCase: CaseLower, NameRule: pubName, Namespace: Prohibited},
	"pypi":             {NamespaceCase: CaseLower, NameCase: CaseLower, NameRule: underscoreToHyphen, Namespace: Prohibited},
	"qpkg":             {NamespaceCase: CaseLower},
	"rpm":              {},
	"swid":             {},
	"swift":            {Namespace: Required, VersionRequired: true},
	"vscode-extension": {Namespace: Required},
	"yocto":            {},
}

// LookupType returns the rule for the lower case purl type t. Unknown types
// get the zero rule, which normalizes nothing.
func LookupType(t string) (TypeRule, bool) {
	r, ok := typeRules[t]
	return r, ok
}

// KnownTypes returns the purl types with an entry in the rule table, sorted.
func KnownTypes() []string {
	types := make([]string, 0, len(typeRules))
	for t := range typeRules {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func underscoreToHyphen(name string, _ bool) string {
	return strings.ReplaceAll(name, "_", "-")
}

// pubName works on the decoded name: the result only holds [a-z0-9_], which
// reads the same encoded or decoded.
func pubName(name string, encoded bool) string {
	if encoded {
		name = Unquote(name)
	}
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			return r
		}
		return '_'
	}, name)
}

func mlflowName(name string, q QualifierSource, encoded bool) string {
	if q == nil {
		return name
	}
	hint := strings.ToLower(q.repositoryHint())
	switch {
	case strings.Contains(hint, "azureml"):
		return name
	case strings.Contains(hint, "databricks"):
		return CaseLower.apply(name, encoded)
	}
	return name
}
