// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assoc

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type op struct {
	del   bool
	key   string
	value string
}

func set(k, v string) op { return op{key: k, value: v} }
func del(k string) op    { return op{del: true, key: k} }

func apply(t *Table[string, string], ops []op) {
	for _, o := range ops {
		if o.del {
			t.Delete(o.key)
		} else {
			t.Set(o.key, o.value)
		}
	}
}

func TestTableOrder(t *testing.T) {
	tests := []struct {
		name string
		ops  []op
		want []Pair[string, string]
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "insertion order",
			ops:  []op{set("k1", "a"), set("k2", "b"), set("k3", "c")},
			want: []Pair[string, string]{{"k1", "a"}, {"k2", "b"}, {"k3", "c"}},
		},
		{
			name: "update keeps position",
			ops:  []op{set("k1", "a"), set("k2", "b"), set("k3", "c"), set("k1", "z")},
			want: []Pair[string, string]{{"k1", "z"}, {"k2", "b"}, {"k3", "c"}},
		},
		{
			name: "delete shifts later pairs",
			ops:  []op{set("k1", "a"), set("k2", "b"), set("k3", "c"), del("k2")},
			want: []Pair[string, string]{{"k1", "a"}, {"k3", "c"}},
		},
		{
			name: "reinsertion appends",
			ops:  []op{set("K", "1"), set("J", "2"), del("K"), set("K", "3")},
			want: []Pair[string, string]{{"J", "2"}, {"K", "3"}},
		},
		{
			name: "delete absent is a no-op",
			ops:  []op{set("a", "1"), set("b", "2"), del("missing")},
			want: []Pair[string, string]{{"a", "1"}, {"b", "2"}},
		},
		{
			name: "delete everything",
			ops:  []op{set("a", "1"), del("a")},
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New[string, string]()
			apply(tbl, tc.ops)
			if diff := cmp.Diff(tc.want, tbl.Pairs()); diff != "" {
				t.Errorf("pairs mismatch (-want +got):\n%s", diff)
			}
			if got := tbl.Len(); got != len(tc.want) {
				t.Errorf("Len() = %d, want %d", got, len(tc.want))
			}
		})
	}
}

func TestTableUniqueKeys(t *testing.T) {
	keys := []string{"a", "b", "a", "c", "b", "a", "d", "c"}
	tbl := New[string, int]()
	distinct := map[string]bool{}
	for i, k := range keys {
		tbl.Set(k, i)
		distinct[k] = true
		if tbl.Len() != len(distinct) {
			t.Fatalf("after Set(%q): Len() = %d, want %d", k, tbl.Len(), len(distinct))
		}
	}
	got := slices.Collect(tbl.Keys())
	want := []string{"a", "b", "c", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestTableGet(t *testing.T) {
	tbl := New[string, string]()
	tbl.Set("Japan", "Edo")
	tbl.Set("England", "London")

	t.Run("present", func(t *testing.T) {
		got, err := tbl.Get("England")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "London" {
			t.Errorf("Get(England) = %q, want %q", got, "London")
		}
	})

	t.Run("absent reports requested key", func(t *testing.T) {
		got, err := tbl.Get("Soviet")
		if got != "" {
			t.Errorf("Get(Soviet) = %q, want zero value", got)
		}
		var knf *KeyNotFoundError
		if !errors.As(err, &knf) {
			t.Fatalf("Get(Soviet) error = %v, want *KeyNotFoundError", err)
		}
		if knf.Key != "Soviet" {
			t.Errorf("KeyNotFoundError.Key = %v, want Soviet", knf.Key)
		}
		if !errors.Is(err, ErrKeyNotFound) {
			t.Error("errors.Is(err, ErrKeyNotFound) = false")
		}
		if got, want := err.Error(), `key "Soviet" not found`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := New[int, string]().Get(42)
		if got, want := err.Error(), "key 42 not found"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("GetOr", func(t *testing.T) {
		if got := tbl.GetOr("Japan", "none"); got != "Edo" {
			t.Errorf("GetOr(Japan) = %q, want Edo", got)
		}
		if got := tbl.GetOr("Soviet", "none"); got != "none" {
			t.Errorf("GetOr(Soviet) = %q, want none", got)
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		if v, ok := tbl.Lookup("Japan"); !ok || v != "Edo" {
			t.Errorf("Lookup(Japan) = %q, %v; want Edo, true", v, ok)
		}
		if v, ok := tbl.Lookup("Soviet"); ok || v != "" {
			t.Errorf("Lookup(Soviet) = %q, %v; want \"\", false", v, ok)
		}
	})
}

func TestTableSetGetRoundTrip(t *testing.T) {
	tbl := New[int, []string]()
	for i := range 50 {
		v := []string{strings.Repeat("x", i)}
		tbl.Set(i%7, v)
		if diff := cmp.Diff(v, tbl.GetOr(i%7, nil)); diff != "" {
			t.Fatalf("GetOr(%d) mismatch (-want +got):\n%s", i%7, diff)
		}
	}
	if tbl.Len() != 7 {
		t.Errorf("Len() = %d, want 7", tbl.Len())
	}
}

func TestTableDelete(t *testing.T) {
	tbl := New[string, int]()
	tbl.Set("a", 1)
	tbl.Set("b", 2)

	tbl.Delete("a")
	if tbl.Has("a") {
		t.Error("Has(a) = true after Delete")
	}
	if got := tbl.GetOr("a", -1); got != -1 {
		t.Errorf("GetOr(a, -1) = %d after Delete, want -1", got)
	}

	before := slices.Collect(tbl.Keys())
	tbl.Delete("a")
	tbl.Delete("zzz")
	if diff := cmp.Diff(before, slices.Collect(tbl.Keys())); diff != "" {
		t.Errorf("deleting absent keys changed the table (-want +got):\n%s", diff)
	}
}

func TestTablePutPop(t *testing.T) {
	tbl := New[string, int]()
	if prev, replaced := tbl.Put("a", 1); replaced || prev != 0 {
		t.Errorf("Put(a, 1) = %d, %v; want 0, false", prev, replaced)
	}
	if prev, replaced := tbl.Put("a", 2); !replaced || prev != 1 {
		t.Errorf("Put(a, 2) = %d, %v; want 1, true", prev, replaced)
	}
	if v, ok := tbl.Pop("a"); !ok || v != 2 {
		t.Errorf("Pop(a) = %d, %v; want 2, true", v, ok)
	}
	if v, ok := tbl.Pop("a"); ok || v != 0 {
		t.Errorf("second Pop(a) = %d, %v; want 0, false", v, ok)
	}
}

func TestTableClearAndClone(t *testing.T) {
	tbl := New[string, int](WithCapacity[string](4))
	tbl.Set("a", 1)
	tbl.Set("b", 2)

	c := tbl.Clone()
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", tbl.Len())
	}
	want := []Pair[string, int]{{"a", 1}, {"b", 2}}
	if diff := cmp.Diff(want, c.Pairs()); diff != "" {
		t.Errorf("clone affected by Clear (-want +got):\n%s", diff)
	}

	tbl.Set("c", 3)
	if c.Has("c") {
		t.Error("clone sees pair added to original")
	}
}

func TestTableWithEqual(t *testing.T) {
	tbl := New[string, string](WithEqual(strings.EqualFold))
	tbl.Set("Japan", "Edo")
	tbl.Set("JAPAN", "Tokyo")

	want := []Pair[string, string]{{"Japan", "Tokyo"}}
	if diff := cmp.Diff(want, tbl.Pairs()); diff != "" {
		t.Errorf("pairs mismatch (-want +got):\n%s", diff)
	}
	if !tbl.Has("japan") {
		t.Error("Has(japan) = false")
	}
	if !tbl.Clone().Has("jApAn") {
		t.Error("clone lost the key equality")
	}
}

func TestTableString(t *testing.T) {
	tests := []struct {
		name string
		ops  []op
		want string
	}{
		{name: "empty", want: "{\n}"},
		{
			name: "two pairs",
			ops:  []op{set("Japan", "Tokyo"), set("England", "London")},
			want: "{\n\tJapan: Tokyo,\n\tEngland: London,\n}",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := New[string, string]()
			apply(tbl, tc.ops)
			if got := tbl.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}

	if got, want := (Pair[string, int]{"a", 1}).String(), "(a, 1)"; got != want {
		t.Errorf("Pair.String() = %q, want %q", got, want)
	}
}

func TestTableZeroValue(t *testing.T) {
	var tbl Table[string, int]
	if tbl.Len() != 0 || tbl.Has("x") {
		t.Fatal("zero table is not empty")
	}
	tbl.Set("x", 1)
	if got := tbl.GetOr("x", 0); got != 1 {
		t.Errorf("GetOr(x) = %d, want 1", got)
	}

	var nilTbl *Table[string, int]
	if nilTbl.Len() != 0 || nilTbl.Has("x") || nilTbl.String() != "{\n}" {
		t.Error("nil table does not behave as empty")
	}
	nilTbl.Clear()
	if nilTbl.Pairs() != nil {
		t.Error("Clear on nil table produced pairs")
	}
}

func TestScenario(t *testing.T) {
	tbl := New[string, string]()
	tbl.Set("Japan", "Edo")
	tbl.Set("England", "London")
	tbl.Set("Soviet", "Moscow")
	want := []Pair[string, string]{{"Japan", "Edo"}, {"England", "London"}, {"Soviet", "Moscow"}}
	if diff := cmp.Diff(want, tbl.Pairs()); diff != "" {
		t.Fatalf("step 1 (-want +got):\n%s", diff)
	}

	tbl.Set("Japan", "Tokyo")
	want = []Pair[string, string]{{"Japan", "Tokyo"}, {"England", "London"}, {"Soviet", "Moscow"}}
	if diff := cmp.Diff(want, tbl.Pairs()); diff != "" {
		t.Fatalf("step 2 (-want +got):\n%s", diff)
	}

	tbl.Delete("Soviet")
	want = []Pair[string, string]{{"Japan", "Tokyo"}, {"England", "London"}}
	if diff := cmp.Diff(want, tbl.Pairs()); diff != "" {
		t.Fatalf("step 3 (-want +got):\n%s", diff)
	}

	if !tbl.Has("Japan") {
		t.Error("Has(Japan) = false")
	}
	if tbl.Has("Soviet") {
		t.Error("Has(Soviet) = true")
	}
}
