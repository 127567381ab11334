// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import "strconv"

// Config contains renderer configuration.
type Config struct {
	// Options contains format-specific options.
	Options map[string]string
}

// Option returns a format-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// BoolOption returns a format-specific boolean option with default.
// Unparseable values yield the default.
func (c Config) BoolOption(key string, defaultValue bool) bool {
	v, ok := c.Options[key]
	if !ok {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
