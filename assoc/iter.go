// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import "iter"

// The iterators below copy the pairs when iteration starts, so the loop body
// may modify the table. Such changes are not seen by the running loop.

// Keys returns an iterator over the keys in table order.
func (t *Table[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range t.Pairs() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in table order.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range t.Pairs() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// All returns an iterator over the key-value pairs in table order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range t.Pairs() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
