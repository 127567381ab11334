// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package render defines the output formats used to display a table.
package render

import (
	"io"

	"github.com/albertocavalcante/assoc/assoc"
)

// Renderer is the interface that all output formats must implement.
type Renderer interface {
	// Metadata returns information about this renderer.
	Metadata() Metadata

	// Render writes t to w.
	Render(w io.Writer, t *assoc.Table[string, string], cfg Config) error
}

// Metadata describes a renderer.
type Metadata struct {
	// Name is the short identifier used on the command line (e.g., "text", "json").
	Name string

	// Description is a human-readable description.
	Description string
}
