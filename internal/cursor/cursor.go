// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cursor - front-consumption cursor over an argument sequence.
//
// The parser only ever inspects and removes tokens from the front of the
// sequence, so consumption is a single index into the backing slice and the
// unconsumed remainder is a subslice. The caller's slice is never modified.
package cursor

// Cursor - cursor data
type Cursor struct {
	data []string
	idx  int
}

// New - builds a Cursor over the given token sequence.
func New(data []string) *Cursor {
	return &Cursor{data: data}
}

// Done - tells if the sequence is exhausted.
func (c *Cursor) Done() bool {
	return c.idx >= len(c.data)
}

// Head - returns the front token or an empty string once the sequence is exhausted.
func (c *Cursor) Head() string {
	if c.Done() {
		return ""
	}
	return c.data[c.idx]
}

// PeekNext - returns the token right after the front one and whether it exists.
func (c *Cursor) PeekNext() (string, bool) {
	if c.idx+1 >= len(c.data) {
		return "", false
	}
	return c.data[c.idx+1], true
}

// Advance - consumes the front token. Advancing past the end is a no-op.
func (c *Cursor) Advance() {
	if c.idx < len(c.data) {
		c.idx++
	}
}

// Rest - the unconsumed remainder, in original order.
func (c *Cursor) Rest() []string {
	if c.Done() {
		return []string{}
	}
	return c.data[c.idx:]
}
