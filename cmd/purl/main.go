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

// purl parses, builds and validates package URLs from the command line.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aboutcode-org/packageurl-go/internal/config"
	"github.com/aboutcode-org/packageurl-go/internal/logging"
	"github.com/aboutcode-org/packageurl-go/internal/render"
)

// app carries the state shared by all subcommands once flags and config
// have been resolved.
type app struct {
	configPath string
	output     string
	logLevel   string
	noColor    bool

	cfg    config.Config
	log    zerolog.Logger
	format render.Format
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:   "purl [subcommand]",
		Short: "A CLI tool to parse, build and validate package URLs",
		// Silence errors because we will print the error ourselves in main.
		SilenceErrors: true,
		// Don't show usage for every error.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file (default $"+config.EnvPath+" or "+config.DefaultFile+")")
	flags.StringVarP(&a.output, "output", "o", "", "output format [text, json, yaml]")
	flags.StringVar(&a.logLevel, "log-level", "", "log level [trace, debug, info, warn, error, disabled]")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(a.parseCmd(), a.canonicalCmd(), a.buildCmd(), a.validateCmd())
	return rootCmd
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Path(a.configPath))
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.noColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if a.format, err = render.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if a.log, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug().Str("config", a.configPath).Str("output", cfg.Output).Bool("strict", cfg.Strict).Msg("configured")
	return nil
}

func (a *app) renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.format, !a.cfg.NoColor && !color.NoColor)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
