// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import (
	"fmt"
	"strings"
)

// Pair is a single key-value entry of a Table.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// String renders the pair as "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Table is an ordered associative array backed by a slice of pairs.
//
// The zero value is an empty table ready to use.
type Table[K comparable, V any] struct {
	pairs []Pair[K, V]
	equal func(a, b K) bool // nil means ==
}

// Option configures a Table created by New.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	capacity int
	equal    func(a, b K) bool
}

// WithCapacity preallocates room for n pairs.
func WithCapacity[K comparable](n int) Option[K] {
	return func(o *options[K]) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithEqual replaces == as the key equality used by every lookup.
// eq must be an equivalence relation; uniqueness of keys holds with respect
// to it.
func WithEqual[K comparable](eq func(a, b K) bool) Option[K] {
	return func(o *options[K]) {
		o.equal = eq
	}
}

// New returns an empty table.
func New[K comparable, V any](opts ...Option[K]) *Table[K, V] {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}
	t := &Table[K, V]{equal: o.equal}
	if o.capacity > 0 {
		t.pairs = make([]Pair[K, V], 0, o.capacity)
	}
	return t
}

// Len returns the number of pairs.
func (t *Table[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

// String renders the table one pair per line:
//
//	{
//		key: value,
//	}
//
// The format is meant for diagnostics and is not guaranteed to be parseable.
func (t *Table[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	if t != nil {
		for _, p := range t.pairs {
			fmt.Fprintf(&b, "\t%v: %v,\n", p.Key, p.Value)
		}
	}
	b.WriteString("}")
	return b.String()
}

// index returns the position of key, or -1.
func (t *Table[K, V]) index(key K) int {
	if t == nil {
		return -1
	}
	if t.equal == nil {
		for i := range t.pairs {
			if t.pairs[i].Key == key {
				return i
			}
		}
		return -1
	}
	for i := range t.pairs {
		if t.equal(t.pairs[i].Key, key) {
			return i
		}
	}
	return -1
}

// Has reports whether the table holds key.
func (t *Table[K, V]) Has(key K) bool {
	return t.index(key) >= 0
}

// Get returns the value stored for key. If key is absent it returns the zero
// value and a *KeyNotFoundError naming key.
func (t *Table[K, V]) Get(key K) (V, error) {
	if i := t.index(key); i >= 0 {
		return t.pairs[i].Value, nil
	}
	var zero V
	return zero, &KeyNotFoundError{Key: key}
}

// GetOr returns the value stored for key, or def if key is absent.
func (t *Table[K, V]) GetOr(key K, def V) V {
	if i := t.index(key); i >= 0 {
		return t.pairs[i].Value
	}
	return def
}

// Lookup returns the value stored for key and whether it was present.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	if i := t.index(key); i >= 0 {
		return t.pairs[i].Value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended.
func (t *Table[K, V]) Set(key K, value V) {
	t.Put(key, value)
}

// Put is Set that also returns the value it replaced, if any.
func (t *Table[K, V]) Put(key K, value V) (prev V, replaced bool) {
	if i := t.index(key); i >= 0 {
		prev = t.pairs[i].Value
		t.pairs[i].Value = value
		return prev, true
	}
	t.pairs = append(t.pairs, Pair[K, V]{Key: key, Value: value})
	return prev, false
}

// Delete removes key. Deleting an absent key does nothing.
func (t *Table[K, V]) Delete(key K) {
	t.Pop(key)
}

// Pop removes key and returns the value it held.
func (t *Table[K, V]) Pop(key K) (V, bool) {
	i := t.index(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	v := t.pairs[i].Value
	copy(t.pairs[i:], t.pairs[i+1:])
	t.pairs[len(t.pairs)-1] = Pair[K, V]{}
	t.pairs = t.pairs[:len(t.pairs)-1]
	return v, true
}

// Clear removes every pair.
func (t *Table[K, V]) Clear() {
	if t == nil {
		return
	}
	clear(t.pairs)
	t.pairs = t.pairs[:0]
}

// Pairs returns a copy of the pairs in table order.
func (t *Table[K, V]) Pairs() []Pair[K, V] {
	if t == nil || len(t.pairs) == 0 {
		return nil
	}
	return append([]Pair[K, V](nil), t.pairs...)
}

// Clone returns an independent copy of t using the same key equality.
func (t *Table[K, V]) Clone() *Table[K, V] {
	if t == nil {
		return New[K, V]()
	}
	return &Table[K, V]{
		pairs: t.Pairs(),
		equal: t.equal,
	}
}
