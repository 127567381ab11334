// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/albertocavalcante/assoc/assoc"
	"github.com/albertocavalcante/assoc/render"
)

const none = "<none>"

// Runner executes parsed commands against a fresh table.
type Runner struct {
	// Out receives command output.
	Out io.Writer

	// Renderer is used by the print command (default: render.Text).
	Renderer render.Renderer

	// Config is passed to Renderer.
	Config render.Config

	// Logger receives a debug record per command (default: discard).
	Logger *slog.Logger
}

// Run executes cmds in order and returns the resulting table. It stops at the
// first failing command; the error is prefixed with the command's position
// and name, and wraps the underlying error.
func (r *Runner) Run(ctx context.Context, cmds []Command) (*assoc.Table[string, string], error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rend := r.Renderer
	if rend == nil {
		rend = render.Text{}
	}

	t := assoc.New[string, string]()
	for _, c := range cmds {
		if err := ctx.Err(); err != nil {
			return t, err
		}
		logger.Debug("exec", "pos", c.Pos(), "cmd", c.Name, "args", c.Args)
		if err := r.exec(t, rend, c); err != nil {
			return t, fmt.Errorf("%s: %s: %w", c.Pos(), c.Name, err)
		}
	}
	logger.Debug("script done", "pairs", t.Len())
	return t, nil
}

// RunSource parses and runs src.
func (r *Runner) RunSource(ctx context.Context, name string, src []byte) (*assoc.Table[string, string], error) {
	cmds, err := Parse(name, src)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, cmds)
}

func (r *Runner) exec(t *assoc.Table[string, string], rend render.Renderer, c Command) error {
	switch c.Name {
	case "set":
		t.Set(c.Args[0], c.Args[1])
	case "put":
		prev, replaced := t.Put(c.Args[0], c.Args[1])
		return r.printOptional(prev, replaced)
	case "get":
		v, err := t.Get(c.Args[0])
		if err != nil {
			return err
		}
		return r.println(v)
	case "getor":
		return r.println(t.GetOr(c.Args[0], c.Args[1]))
	case "has":
		return r.println(strconv.FormatBool(t.Has(c.Args[0])))
	case "del":
		t.Delete(c.Args[0])
	case "pop":
		v, ok := t.Pop(c.Args[0])
		return r.printOptional(v, ok)
	case "len":
		return r.println(strconv.Itoa(t.Len()))
	case "keys":
		for k := range t.Keys() {
			if err := r.println(k); err != nil {
				return err
			}
		}
	case "values":
		for v := range t.Values() {
			if err := r.println(v); err != nil {
				return err
			}
		}
	case "items":
		for _, p := range t.Pairs() {
			if err := r.println(p.String()); err != nil {
				return err
			}
		}
	case "print":
		return rend.Render(r.Out, t, r.Config)
	case "clear":
		t.Clear()
	default:
		return fmt.Errorf("unknown command")
	}
	return nil
}

func (r *Runner) println(s string) error {
	_, err := fmt.Fprintln(r.Out, s)
	return err
}

func (r *Runner) printOptional(v string, ok bool) error {
	if !ok {
		return r.println(none)
	}
	return r.println(v)
}
