// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option definition struct and methods.
package option

import (
	"github.com/optkit/optparse/internal/strutil"
)

// Option - a single registered option definition.
// Immutable after registration; owned by the registry that created it.
type Option struct {
	Short       string // Single character short flag, empty when absent.
	Long        string // Long flag name, empty when absent.
	ArgName     string // Display label for the value; empty means boolean switch.
	Description string // Help text.
}

// New - returns a new option definition.
func New(short, long, argName, description string) *Option {
	return &Option{
		Short:       short,
		Long:        long,
		ArgName:     argName,
		Description: description,
	}
}

// TakesValue - tells if the option expects a value.
func (opt *Option) TakesValue() bool {
	return opt.ArgName != ""
}

// Key - the result map key: the long name when set, the short name otherwise,
// camel-cased.
func (opt *Option) Key() string {
	if opt.Long != "" {
		return strutil.Camel(opt.Long)
	}
	return strutil.Camel(opt.Short)
}

// Flags - the help "flags" column: a two character slot for the short flag
// followed by the long flag and the value label when present.
func (opt *Option) Flags() string {
	out := "  "
	if opt.Short != "" {
		out = "-" + opt.Short
	}
	if opt.Long != "" {
		out += " --" + opt.Long
	}
	if opt.ArgName != "" {
		out += " " + opt.ArgName
	}
	return out
}
