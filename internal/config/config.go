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

// Package config loads the settings of the purl command line tool.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted for the config file path.
const EnvPath = "PURL_CONFIG"

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".purl.yaml"

// Config holds the defaults of the purl tool. Command line flags override
// them.
type Config struct {
	Output    string `yaml:"output" validate:"output"`
	Strict    bool   `yaml:"strict"`
	NoColor   bool   `yaml:"no_color"`
	LogLevel  string `yaml:"log_level" validate:"loglevel"`
	LogFormat string `yaml:"log_format" validate:"logformat"`
}

// Default returns the configuration used when there is no config file.
func Default() Config {
	return Config{
		Output:    "text",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Path picks the config file: the flag value, then $PURL_CONFIG, then
// DefaultFile if it exists. It returns "" when there is none.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	if info, err := os.Stat(DefaultFile); err == nil && !info.IsDir() {
		return DefaultFile
	}
	return ""
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

var enums = map[string][]string{
	"output":    {"text", "json", "yaml"},
	"loglevel":  {"trace", "debug", "info", "warn", "error", "disabled"},
	"logformat": {"console", "json"},
}

var validate = mustValidator()

// newValidator returns a validator with one validation per entry of enums.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	for tag, allowed := range enums {
		allowed := allowed
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := strings.ToLower(fl.Field().String())
			for _, a := range allowed {
				if s == a {
					return true
				}
			}
			return false
		})
		if err != nil {
			return nil, errors.Wrapf(err, "registering %s validation", tag)
		}
	}
	return v, nil
}

func mustValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks the enumerated fields of c.
func (c Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: must be one of %s, got %q",
				fe.Field(), strings.Join(enums[fe.Tag()], ", "), fe.Value()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}
