// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package script

import _ "embed"

// DemoName is the file name reported in positions of the demo script.
const DemoName = "demo.txt"

//go:embed demo.txt
var demo []byte

// Demo returns the source of the built-in demonstration script.
func Demo() []byte {
	return append([]byte(nil), demo...)
}
