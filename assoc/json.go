// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// MarshalJSON implements json.Marshaler. Members appear in table order.
//
// Member names follow encoding/json's rules for map keys. Keys that
// encoding/json cannot use fall back to fmt.Sprint. Two keys that produce the
// same member name are an error.
func (t *Table[K, V]) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	seen := make(map[string]K, len(t.pairs))
	buf.WriteByte('{')
	for i, p := range t.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := jsonKey(p.Key)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("keys %#v and %#v both encode as JSON member %q", prev, p.Key, name)
		}
		seen[name] = p.Key
		kb, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(p.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %s: %w", kb, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// jsonKey returns the object member name used for key, in the order
// encoding/json resolves map keys.
func jsonKey(key any) (string, error) {
	rv := reflect.ValueOf(key)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	if tm, ok := key.(encoding.TextMarshaler); ok {
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", nil
		}
		b, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("marshal key %v: %w", key, err)
		}
		return string(b), nil
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return fmt.Sprint(key), nil
}
