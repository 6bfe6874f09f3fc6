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
package packageurl_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aboutcode-org/packageurl-go"
)

func TestNormalizeType(t *testing.T) {
	for _, d := range []packageurl.Direction{packageurl.Encode, packageurl.Decode} {
		if got := packageurl.NormalizeType(" NPM ", d); got != "npm" {
			t.Errorf("NormalizeType(%v) = %q, want %q", d, got, "npm")
		}
	}
	if got := packageurl.NormalizeType("", packageurl.Encode); got != "" {
		t.Errorf("NormalizeType(\"\") = %q, want empty", got)
	}
}

func TestNormalizeNamespace(t *testing.T) {
	tests := []struct {
		in, typ string
		d       packageurl.Direction
		want    string
	}{
		{"", "npm", packageurl.Encode, ""},
		{"///", "npm", packageurl.Encode, ""},
		{"/Org/ /Team/", "github", packageurl.Encode, "org/team"},
		{"dagolden", "cpan", packageurl.Encode, "DAGOLDEN"},
		{"@angular", "npm", packageurl.Encode, "%40angular"},
		{"%40angular", "npm", packageurl.Decode, "@angular"},
		{"a%2Fb/c", "generic", packageurl.Decode, "a/b/c"},
		{"Caf%C3%A9", "pypi", packageurl.Decode, "café"},
		{"Café", "pypi", packageurl.Encode, "caf%C3%A9"},
		{"Foo", "maven", packageurl.Verbatim, "Foo"},
		{"%AB", "github", packageurl.Encode, "%25ab"},
		{"%25AB", "github", packageurl.Decode, "%ab"},
		{"%ab/Mod", "cpan", packageurl.Encode, "%25AB/MOD"},
		{"%20x/y", "generic", packageurl.Decode, "x/y"},
		{"%20/y", "generic", packageurl.Decode, "y"},
	}
	for _, test := range tests {
		if got := packageurl.NormalizeNamespace(test.in, test.typ, test.d); got != test.want {
			t.Errorf("NormalizeNamespace(%q, %q, %v) = %q, want %q", test.in, test.typ, test.d, got, test.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	databricks := packageurl.Qualifiers{{Key: "repository_url", Value: "https://adb-1.azuredatabricks.net"}}
	azureml := packageurl.Qualifiers{{Key: "repository_url", Value: "https://westus.api.AzureML.ms/databricks"}}
	tests := []struct {
		in   string
		q    packageurl.QualifierSource
		typ  string
		d    packageurl.Direction
		want string
	}{
		{"", nil, "npm", packageurl.Encode, ""},
		{" / ", nil, "npm", packageurl.Decode, ""},
		{"Foo", nil, "npm", packageurl.Encode, "foo"},
		{"Foo", nil, "maven", packageurl.Encode, "Foo"},
		{"Django_Rest", nil, "pypi", packageurl.Encode, "django-rest"},
		{"Cabal_Syntax", nil, "hackage", packageurl.Encode, "Cabal-Syntax"},
		{"Flutter-Test.Kit", nil, "pub", packageurl.Encode, "flutter_test_kit"},
		{"a%41", nil, "pub", packageurl.Encode, "a_41"},
		{"a%2541", nil, "pub", packageurl.Decode, "a_41"},
		{"caf%C3%A9", nil, "pub", packageurl.Decode, "caf_"},
		{"%25AB", nil, "npm", packageurl.Decode, "%ab"},
		{"%AB", nil, "npm", packageurl.Encode, "%25ab"},
		{"Café", nil, "npm", packageurl.Encode, "caf%C3%A9"},
		{"/core/", nil, "npm", packageurl.Decode, "core"},
		{"a b", nil, "generic", packageurl.Encode, "a%20b"},
		{"a%20b", nil, "generic", packageurl.Decode, "a b"},
		{"Model", databricks, "mlflow", packageurl.Encode, "model"},
		{"Model", azureml, "mlflow", packageurl.Encode, "Model"},
		{"Model", nil, "mlflow", packageurl.Encode, "Model"},
		{"Model", packageurl.RawQualifiers("repository_url=https://x.azuredatabricks.net"), "mlflow", packageurl.Decode, "model"},
		{"Model", packageurl.RawQualifiers("repository_url=https://x.example.com"), "mlflow", packageurl.Decode, "Model"},
	}
	for _, test := range tests {
		if got := packageurl.NormalizeName(test.in, test.q, test.typ, test.d); got != test.want {
			t.Errorf("NormalizeName(%q, %v, %q, %v) = %q, want %q", test.in, test.q, test.typ, test.d, got, test.want)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in, typ string
		d       packageurl.Direction
		want    string
	}{
		{"", "npm", packageurl.Encode, ""},
		{"  ", "npm", packageurl.Encode, ""},
		{" 1.0 ", "npm", packageurl.Encode, "1.0"},
		{"1.0+Build", "npm", packageurl.Encode, "1.0%2BBuild"},
		{"ABC", "huggingface", packageurl.Encode, "abc"},
		{"SHA256:AB", "oci", packageurl.Decode, "sha256:ab"},
		{"ABC", "github", packageurl.Encode, "ABC"},
		{"%C3%A9", "oci", packageurl.Encode, "%25c3%25a9"},
		{"%25AB", "oci", packageurl.Decode, "%ab"},
		{"%201.0", "npm", packageurl.Decode, "1.0"},
	}
	for _, test := range tests {
		if got := packageurl.NormalizeVersion(test.in, test.typ, test.d); got != test.want {
			t.Errorf("NormalizeVersion(%q, %q, %v) = %q, want %q", test.in, test.typ, test.d, got, test.want)
		}
	}
}

func TestNormalizeSubpath(t *testing.T) {
	tests := []struct {
		in   string
		d    packageurl.Direction
		want string
	}{
		{"", packageurl.Encode, ""},
		{"/", packageurl.Encode, ""},
		{"./..", packageurl.Encode, ""},
		{"/a/./b/../c/", packageurl.Encode, "a/b/c"},
		{"a b/c", packageurl.Encode, "a%20b/c"},
		{"a%20b/c", packageurl.Decode, "a b/c"},
		{"%2E%2E/b/%2e", packageurl.Decode, "b"},
		{"a/%20/b", packageurl.Decode, "a/b"},
		{"%2E./b", packageurl.Encode, "%252E./b"},
	}
	for _, test := range tests {
		if got := packageurl.NormalizeSubpath(test.in, test.d); got != test.want {
			t.Errorf("NormalizeSubpath(%q, %v) = %q, want %q", test.in, test.d, got, test.want)
		}
	}
}

func TestParseQualifiers(t *testing.T) {
	got, err := packageurl.ParseQualifiers("b=2&a=x=y&c=")
	if err != nil {
		t.Fatal(err)
	}
	want := packageurl.Qualifiers{{Key: "b", Value: "2"}, {Key: "a", Value: "x=y"}, {Key: "c", Value: ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseQualifiers mismatch (-want +got):\n%s", diff)
	}

	got, err = packageurl.ParseQualifiers("")
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("ParseQualifiers(\"\") = %#v, %v; want empty, nil", got, err)
	}

	if _, err := packageurl.ParseQualifiers("a=1&b"); !errors.Is(err, packageurl.ErrInvalidQualifierString) {
		t.Errorf("ParseQualifiers(\"a=1&b\"): got %v, want ErrInvalidQualifierString", err)
	}
}

func TestNormalizeQualifiers(t *testing.T) {
	in := packageurl.Qualifiers{
		{Key: "OS", Value: "linux"},
		{Key: "arch", Value: "x86 64"},
		{Key: "empty", Value: " "},
		{Key: " ", Value: "x"},
		{Key: "os", Value: "darwin"},
	}
	got, err := packageurl.NormalizeQualifiers(in, packageurl.Encode)
	if err != nil {
		t.Fatal(err)
	}
	want := packageurl.Qualifiers{{Key: "arch", Value: "x86%2064"}, {Key: "os", Value: "darwin"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeQualifiers mismatch (-want +got):\n%s", diff)
	}

	got, err = packageurl.NormalizeQualifiers(nil, packageurl.Decode)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("NormalizeQualifiers(nil) = %#v, %v; want empty non-nil mapping", got, err)
	}

	for _, key := range []string{"1bad", "a%20b", "a b", "a*b", "ключ"} {
		q := packageurl.Qualifiers{{Key: key, Value: "v"}}
		if _, err := packageurl.NormalizeQualifiers(q, packageurl.Encode); !errors.Is(err, packageurl.ErrInvalidQualifierKey) {
			t.Errorf("key %q: got %v, want ErrInvalidQualifierKey", key, err)
		}
	}
}

func TestEncodeQualifiers(t *testing.T) {
	s, err := packageurl.EncodeQualifiers(packageurl.QualifiersFromMap(map[string]string{"b": "2", "a": "1"}))
	if err != nil {
		t.Fatal(err)
	}
	if s != "a=1&b=2" {
		t.Errorf("got %q, want %q", s, "a=1&b=2")
	}

	s, err = packageurl.EncodeQualifiers(packageurl.QualifiersFromMap(map[string]string{"os": "", "arch": "x64"}))
	if err != nil || s != "arch=x64" {
		t.Errorf("got %q, %v; want %q", s, err, "arch=x64")
	}

	s, err = packageurl.EncodeQualifiers(packageurl.Qualifiers{{Key: "os", Value: ""}})
	if err != nil || s != "" {
		t.Errorf("got %q, %v; want absent", s, err)
	}

	if _, err := packageurl.EncodeQualifiers(packageurl.QualifiersFromMap(map[string]string{"1bad": "x"})); !errors.Is(err, packageurl.ErrInvalidQualifierKey) {
		t.Errorf("got %v, want ErrInvalidQualifierKey", err)
	}
}
