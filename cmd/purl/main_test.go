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
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aboutcode-org/packageurl-go/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParse(t *testing.T) {
	out, err := run(t, "parse", "-o", "json", "pkg:npm/%40angular/core@1.0.0")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "@angular", got[0]["namespace"])
	assert.Equal(t, "core", got[0]["name"])
	assert.Equal(t, "1.0.0", got[0]["version"])
}

func TestParse_Invalid(t *testing.T) {
	_, err := run(t, "parse", "npm/foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parsing "npm/foo"`)
}

func TestCanonical(t *testing.T) {
	out, err := run(t, "canonical", "pkg:NPM/Foo@1.0", "pkg://generic/a%2Fb/c?B=1#./x/")
	require.NoError(t, err)
	assert.Equal(t, "pkg:npm/foo@1.0\npkg:generic/a/b/c?b=1#x\n", out)
}

func TestBuild(t *testing.T) {
	out, err := run(t, "build", "--type", "pypi", "--name", "Django_Rest", "--version", "1.0",
		"--qualifier", "os=linux", "--qualifier", "arch=x86_64")
	require.NoError(t, err)
	assert.Equal(t, "pkg:pypi/django-rest@1.0?arch=x86_64&os=linux\n", out)
}

func TestBuild_Errors(t *testing.T) {
	_, err := run(t, "build", "--type", "npm")
	assert.Error(t, err, "a name is required")

	_, err = run(t, "build", "--type", "npm", "--name", "foo", "--qualifier", "novalue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key=value")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "pkg:npm/foo", "npm/foo")
	require.Error(t, err)
	assert.Equal(t, "1 of 2 purls failed validation", err.Error())
	assert.Contains(t, out, "ok pkg:npm/foo\n")
	assert.Contains(t, out, "  error scheme: ")

	out, err = run(t, "validate", "--strict", "pkg:npm/Foo")
	require.NoError(t, err, "warnings do not fail validation")
	assert.Contains(t, out, `  warning name: name "Foo" is not canonical, expected "foo"`)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\nstrict: true\n"), 0o600))

	out, err := run(t, "--config", path, "canonical", "pkg:npm/foo")
	require.NoError(t, err)
	assert.Equal(t, "- pkg:npm/foo\n", out)

	_, err = run(t, "--config", path, "validate", "pkg:swift/foo")
	require.Error(t, err, "strict from the config file requires a namespace for swift")

	out, err = run(t, "--config", path, "-o", "text", "canonical", "pkg:npm/foo")
	require.NoError(t, err)
	assert.Equal(t, "pkg:npm/foo\n", out, "flags override the config file")
}

func TestConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o600))

	_, err := run(t, "--config", path, "canonical", "pkg:npm/foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}
