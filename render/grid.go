// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/albertocavalcante/assoc/assoc"
)

// Grid renders the table as a two-column KEY/VALUE grid.
//
// Options:
//
//	border  draw the outer border (default true)
//	header  print the KEY/VALUE header (default true)
type Grid struct{}

func (Grid) Metadata() Metadata {
	return Metadata{
		Name:        "table",
		Description: "Aligned KEY/VALUE grid",
	}
}

func (Grid) Render(w io.Writer, t *assoc.Table[string, string], cfg Config) error {
	tw := tablewriter.NewWriter(w)
	if cfg.BoolOption("header", true) {
		tw.SetHeader([]string{"KEY", "VALUE"})
	}
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorder(cfg.BoolOption("border", true))
	for k, v := range t.All() {
		tw.Append([]string{k, v})
	}
	tw.Render()
	return nil
}
