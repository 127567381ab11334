// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package render

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Renderer)
)

func init() {
	registerBuiltins()
}

func registerBuiltins() {
	Register(Text{})
	Register(Grid{})
	Register(JSON{})
}

// Register adds a renderer to the registry.
func Register(r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	meta := r.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("renderer %q already registered", meta.Name))
	}
	registry[meta.Name] = r
}

// Get returns a renderer by name.
func Get(name string) (Renderer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	return r, ok
}

// Lookup is like Get but returns an error naming the known formats.
func Lookup(name string) (Renderer, error) {
	if r, ok := Get(name); ok {
		return r, nil
	}
	return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(List(), ", "))
}

// List returns all registered renderer names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset restores the registry to the built-in renderers (for testing).
func Reset() {
	mu.Lock()
	registry = make(map[string]Renderer)
	mu.Unlock()
	registerBuiltins()
}
