// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/assoc/internal/script"
	"github.com/albertocavalcante/assoc/render"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	format  string
	opts    map[string]string
	verbose bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "assoc",
		Short: "Run command scripts against an ordered associative array",
		Long: `assoc runs line-oriented command scripts (set, get, del, has, print, ...)
against a table that keeps its pairs in insertion order.

With no subcommand it runs the built-in demonstration.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runDemo(cmd)
		},
	}
	root.SetVersionTemplate("assoc {{.Version}}\n")
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&o.format, "format", "f", "text", "output format for print (see 'assoc formats')")
	pf.StringToStringVarP(&o.opts, "opt", "o", nil, "renderer option key=value (repeatable)")
	pf.BoolVar(&o.verbose, "verbose", false, "log each command to stderr")

	root.AddCommand(
		newDemoCmd(o),
		newRunCmd(o),
		newFormatsCmd(),
	)
	return root
}

func newDemoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runDemo(cmd)
		},
	}
}

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Run scripts, each against a fresh table",
		Example: `  assoc run capitals.txt
  echo 'set a 1
print' | assoc run -f json -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.runner(cmd)
			if err != nil {
				return err
			}
			for _, file := range args {
				src, name, err := readScript(cmd, file)
				if err != nil {
					return err
				}
				r.Logger.Debug("run script", "file", name)
				if _, err := r.RunSource(cmd.Context(), name, src); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"NAME", "DESCRIPTION"})
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetHeaderLine(false)
			table.SetBorder(false)
			table.SetNoWhiteSpace(true)
			table.SetTablePadding("    ")
			for _, name := range render.List() {
				r, _ := render.Get(name)
				table.Append([]string{name, r.Metadata().Description})
			}
			table.Render()
			return nil
		},
	}
}

func (o *options) runDemo(cmd *cobra.Command) error {
	r, err := o.runner(cmd)
	if err != nil {
		return err
	}
	_, err = r.RunSource(cmd.Context(), script.DemoName, script.Demo())
	return err
}

// runner builds a script runner from the persistent flags.
func (o *options) runner(cmd *cobra.Command) (*script.Runner, error) {
	rend, err := render.Lookup(o.format)
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &script.Runner{
		Out:      cmd.OutOrStdout(),
		Renderer: rend,
		Config:   render.Config{Options: o.opts},
		Logger:   logger,
	}, nil
}

// readScript reads file, or standard input when file is "-".
func readScript(cmd *cobra.Command, file string) (src []byte, name string, err error) {
	if file == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return src, "<stdin>", nil
	}
	src, err = os.ReadFile(file)
	if err != nil {
		return nil, "", fmt.Errorf("read script: %w", err)
	}
	return src, file, nil
}
