// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/maps"
)

var (
	_ maps.Map                  = (*GodsMap[string, int])(nil)
	_ containers.JSONSerializer = (*GodsMap[string, int])(nil)
)

// GodsMap is a view of a Table that implements the gods maps.Map interface.
// It shares storage with the table it was obtained from.
type GodsMap[K comparable, V any] struct {
	t *Table[K, V]
}

// Gods returns t as a gods map.
func (t *Table[K, V]) Gods() *GodsMap[K, V] {
	return &GodsMap[K, V]{t: t}
}

// Table returns the underlying table.
func (m *GodsMap[K, V]) Table() *Table[K, V] {
	return m.t
}

// Put stores value under key. It panics if key is not a K or value is not a
// V; a nil value is stored as the zero V.
func (m *GodsMap[K, V]) Put(key interface{}, value interface{}) {
	k, ok := key.(K)
	if !ok {
		panic(fmt.Sprintf("assoc: key of type %T does not match table key type %v", key, reflect.TypeFor[K]()))
	}
	var v V
	if value != nil {
		v, ok = value.(V)
		if !ok {
			panic(fmt.Sprintf("assoc: value of type %T does not match table value type %v", value, reflect.TypeFor[V]()))
		}
	}
	m.t.Set(k, v)
}

// Get returns the value stored for key. A key of the wrong type is not found.
func (m *GodsMap[K, V]) Get(key interface{}) (value interface{}, found bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	v, found := m.t.Lookup(k)
	if !found {
		return nil, false
	}
	return v, true
}

// Remove deletes key.
func (m *GodsMap[K, V]) Remove(key interface{}) {
	if k, ok := key.(K); ok {
		m.t.Delete(k)
	}
}

// Keys returns the keys in table order.
func (m *GodsMap[K, V]) Keys() []interface{} {
	keys := make([]interface{}, 0, m.t.Len())
	for k := range m.t.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in table order.
func (m *GodsMap[K, V]) Values() []interface{} {
	values := make([]interface{}, 0, m.t.Len())
	for v := range m.t.Values() {
		values = append(values, v)
	}
	return values
}

func (m *GodsMap[K, V]) Empty() bool { return m.t.Len() == 0 }
func (m *GodsMap[K, V]) Size() int { return m.t.Len() }
func (m *GodsMap[K, V]) Clear() { m.t.Clear() }

func (m *GodsMap[K, V]) String() string {
	return "AssocTable\n" + m.t.String()
}

// ToJSON implements containers.JSONSerializer.
func (m *GodsMap[K, V]) ToJSON() ([]byte, error) {
	return m.t.MarshalJSON()
}

// MarshalJSON implements json.Marshaler.
func (m *GodsMap[K, V]) MarshalJSON() ([]byte, error) {
	return m.t.MarshalJSON()
}
