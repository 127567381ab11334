// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command assoc runs command scripts against an ordered associative array.
//
// Usage:
//
//	assoc [flags]                 run the built-in demonstration
//	assoc demo [flags]            same as above
//	assoc run [flags] FILE...     run scripts ("-" reads stdin)
//	assoc formats                 list output formats
//
// Flags:
//
//	-f, --format     Output format for the print command (default: text)
//	-o, --opt        Renderer option key=value (repeatable)
//	--verbose        Log each command to stderr
//	--version        Show version information
package main

import (
	"context"
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
