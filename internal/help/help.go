// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - builds the aligned option list for the help output.
package help

import (
	"strings"

	"github.com/optkit/optparse/internal/option"
	"github.com/optkit/optparse/internal/strutil"
)

// Gap - spaces between the widest flags column and the description.
var Gap = 2

// OptionList - one line per option in registration order: the flags column
// padded to the widest column plus the gap, followed by the description.
// Pure function of the option list.
func OptionList(options []*option.Option) string {
	width := 0
	for _, opt := range options {
		if l := len(opt.Flags()); l > width {
			width = l
		}
	}
	lines := make([]string, len(options))
	for i, opt := range options {
		lines[i] = strutil.Pad(opt.Flags(), width+Gap) + opt.Description
	}
	return strings.Join(lines, "\n")
}
