// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/albertocavalcante/assoc/assoc"
)

// Text renders the table's display string.
type Text struct{}

func (Text) Metadata() Metadata {
	return Metadata{
		Name:        "text",
		Description: "Brace-delimited key: value lines",
	}
}

func (Text) Render(w io.Writer, t *assoc.Table[string, string], _ Config) error {
	_, err := fmt.Fprintln(w, t.String())
	return err
}
