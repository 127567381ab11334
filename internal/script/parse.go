// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package script runs line-oriented command scripts against a table of
// strings.
//
// Each non-blank line that does not start with '#' is one command:
//
//	set KEY VALUE    store VALUE under KEY
//	put KEY VALUE    like set, printing the replaced value or <none>
//	get KEY          print the value; a missing key stops the script
//	getor KEY DEF    print the value, or DEF if KEY is missing
//	has KEY          print true or false
//	del KEY          delete KEY (missing keys are ignored)
//	pop KEY          delete KEY, printing its value or <none>
//	len              print the number of pairs
//	keys             print every key, one per line
//	values           print every value, one per line
//	items            print every pair as (key, value)
//	print            render the table with the configured renderer
//	clear            remove every pair
//
// KEY is a single word or a Go double-quoted string. VALUE and DEF are either
// a quoted string or the rest of the line.
package script

import (
	"fmt"
	"strconv"
	"strings"
)

// arity describes the arguments a command takes.
type arity int

const (
	noArgs   arity = iota
	keyOnly        // one token
	keyValue       // one token, then the rest of the line
)

var commands = map[string]arity{
	"set":    keyValue,
	"put":    keyValue,
	"get":    keyOnly,
	"getor":  keyValue,
	"has":    keyOnly,
	"del":    keyOnly,
	"pop":    keyOnly,
	"len":    noArgs,
	"keys":   noArgs,
	"values": noArgs,
	"items":  noArgs,
	"print":  noArgs,
	"clear":  noArgs,
}

// Command is one parsed script line.
type Command struct {
	Name string
	Args []string

	File string
	Line int
}

// Pos returns "file:line".
func (c Command) Pos() string {
	return fmt.Sprintf("%s:%d", c.File, c.Line)
}

// Parse parses src. name is used in error positions.
func Parse(name string, src []byte) ([]Command, error) {
	var cmds []Command
	for i, line := range strings.Split(string(src), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, i+1, err)
		}
		c.File = name
		c.Line = i + 1
		cmds = append(cmds, c)
	}
	return cmds, nil
}

func parseLine(line string) (Command, error) {
	name, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, rest = line[:i], line[i+1:]
	}
	a, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", name)
	}
	c := Command{Name: name}
	rest = strings.TrimSpace(rest)

	switch a {
	case noArgs:
		if rest != "" {
			return Command{}, fmt.Errorf("%s: unexpected arguments %q", name, rest)
		}
	case keyOnly, keyValue:
		key, tail, err := nextToken(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", name, err)
		}
		c.Args = append(c.Args, key)
		tail = strings.TrimSpace(tail)
		if a == keyOnly {
			if tail != "" {
				return Command{}, fmt.Errorf("%s: unexpected arguments %q", name, tail)
			}
			break
		}
		value, err := restValue(tail)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", name, err)
		}
		c.Args = append(c.Args, value)
	}
	return c, nil
}

// nextToken returns the first word or quoted string of s and what follows.
func nextToken(s string) (tok, rest string, err error) {
	if s == "" {
		return "", "", fmt.Errorf("missing key")
	}
	if s[0] == '"' {
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", fmt.Errorf("bad quoted string %s", s)
		}
		rest = s[len(q):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			return "", "", fmt.Errorf("missing space after %s", q)
		}
		tok, err = strconv.Unquote(q)
		return tok, rest, err
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:], nil
	}
	return s, "", nil
}

// restValue interprets the remainder of a line as a value.
func restValue(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("missing value")
	}
	if s[0] != '"' {
		return s, nil
	}
	v, tail, err := nextToken(s)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(tail) != "" {
		return "", fmt.Errorf("unexpected text after quoted value: %q", strings.TrimSpace(tail))
	}
	return v, nil
}
