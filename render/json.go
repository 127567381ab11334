// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"encoding/json"
	"io"

	"github.com/albertocavalcante/assoc/assoc"
)

// JSON renders the table as a JSON object in table order.
//
// The "indent" option sets the indentation string (default two spaces);
// an empty indent produces compact output.
type JSON struct{}

func (JSON) Metadata() Metadata {
	return Metadata{
		Name:        "json",
		Description: "JSON object, members in table order",
	}
}

func (JSON) Render(w io.Writer, t *assoc.Table[string, string], cfg Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", cfg.Option("indent", "  "))
	return enc.Encode(t)
}
