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
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	packageurl "github.com/aboutcode-org/packageurl-go"
	"github.com/aboutcode-org/packageurl-go/internal/render"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <purl>...",
		Short: "Parse package URLs and print their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			purls := make([]packageurl.PackageURL, 0, len(args))
			for _, arg := range args {
				a.log.Debug().Str("purl", arg).Msg("parsing")
				p, err := packageurl.FromString(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing %q", arg)
				}
				purls = append(purls, p)
			}
			return a.renderer(cmd).Components(purls)
		},
	}
}

func (a *app) canonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <purl>...",
		Short: "Print the canonical form of package URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]string, 0, len(args))
			for _, arg := range args {
				p, err := packageurl.FromString(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing %q", arg)
				}
				s, err := p.Canonical()
				if err != nil {
					return errors.Wrapf(err, "serializing %q", arg)
				}
				if s != arg {
					a.log.Info().Str("purl", arg).Str("canonical", s).Msg("purl was not canonical")
				}
				out = append(out, s)
			}
			return a.renderer(cmd).Strings(out)
		},
	}
}

func (a *app) buildCmd() *cobra.Command {
	var (
		purlType, namespace, name, version, subpath string
		qualifiers                                  []string
	)
	cmd := &cobra.Command{
		Use:   "build --type <type> --name <name> [--namespace ns] [--version v] [--qualifier k=v]... [--subpath p]",
		Short: "Build a canonical package URL from its components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := make(packageurl.Qualifiers, 0, len(qualifiers))
			for _, kv := range qualifiers {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return errors.Errorf("qualifier %q is not of the form key=value", kv)
				}
				q = append(q, packageurl.Qualifier{Key: k, Value: v})
			}
			p, err := packageurl.NewPackageURL(purlType, namespace, name, version, q, subpath)
			if err != nil {
				return err
			}
			s, err := p.Canonical()
			if err != nil {
				return errors.Wrap(err, "building purl")
			}
			return a.renderer(cmd).Strings([]string{s})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&purlType, "type", "", "package type, e.g. npm or pypi")
	flags.StringVar(&namespace, "namespace", "", "package namespace")
	flags.StringVar(&name, "name", "", "package name")
	flags.StringVar(&version, "version", "", "package version")
	flags.StringArrayVar(&qualifiers, "qualifier", nil, "qualifier as key=value, may be repeated")
	flags.StringVar(&subpath, "subpath", "", "path inside the package")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [--strict] <purl>...",
		Short: "Report problems with package URLs",
		Long: `Report problems with package URLs.

Without --strict only failures to parse are reported. With --strict, purls
that parse but are not in canonical form, and purls missing components their
type requires, are reported too.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}
			results := make([]render.Validation, 0, len(args))
			failed := 0
			for _, arg := range args {
				diags := packageurl.ValidateString(arg, strict)
				if packageurl.HasErrors(diags) {
					failed++
				}
				a.log.Debug().Str("purl", arg).Int("diagnostics", len(diags)).Msg("validated")
				results = append(results, render.Validation{Purl: arg, Diagnostics: diags})
			}
			if err := a.renderer(cmd).Validations(results); err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d of %d purls failed validation", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "also report non-canonical forms and type requirements")
	return cmd
}
