// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every *KeyNotFoundError via errors.Is.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError is returned by Table.Get when no pair has the requested key.
type KeyNotFoundError struct {
	// Key is the key that was looked up.
	Key any
}

func (e *KeyNotFoundError) Error() string {
	if s, ok := e.Key.(string); ok {
		return fmt.Sprintf("key %q not found", s)
	}
	return fmt.Sprintf("key %v not found", e.Key)
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
