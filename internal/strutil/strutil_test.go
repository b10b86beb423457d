// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package strutil

import "testing"

func TestCamel(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"", ""},
		{"v", "v"},
		{"verbose", "verbose"},
		{"dry-run", "dryRun"},
		{"a-b-c", "aBC"},
		{"long--name", "longName"},
		{"snake_case", "snakeCase"},
		{"two words", "twoWords"},
		{"mixed-case_name here", "mixedCaseNameHere"},
	}
	for _, c := range cases {
		if got := Camel(c.in); got != c.out {
			t.Errorf("Camel(%q) == %q, want %q", c.in, got, c.out)
		}
	}
}

func TestPad(t *testing.T) {
	cases := []struct {
		in    string
		width int
		out   string
	}{
		{"", 3, "   "},
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "abcde"},
	}
	for _, c := range cases {
		if got := Pad(c.in, c.width); got != c.out {
			t.Errorf("Pad(%q, %d) == %q, want %q", c.in, c.width, got, c.out)
		}
	}
}
