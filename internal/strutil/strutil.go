// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package strutil - string primitives shared by the parser and the help renderer.
package strutil

import (
	"fmt"
	"strings"
	"unicode"
)

// Pad - pads s with spaces on the right up to the given width.
// Strings already at or beyond the width are returned unchanged.
func Pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// Camel - converts a hyphen, underscore or space separated name into camelCase.
// Runs of separators collapse and the letter that follows them is upper-cased.
func Camel(s string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range s {
		switch r {
		case '-', '_', ' ':
			upperNext = true
		default:
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				upperNext = false
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
