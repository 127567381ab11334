// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package assoc provides Table, an associative array that keeps its
// key-value pairs in a single ordered slice and answers every query by a
// linear scan.
//
// Pairs are kept in first-insertion order. Updating a key keeps its position;
// deleting a key removes it, and setting it again appends it at the end.
//
// A Table is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package assoc
