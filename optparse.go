// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package optparse - minimal POSIX/GNU style command line option parser.

It operates on any given slice of strings and returns the remaining (non
consumed) arguments together with the options that were seen. Parsing stops at
the first argument that is not option-like, which makes subcommand handling
easy: parse, act, then parse the remainder again with another Parser.

# Usage

The following is a basic example:

	parser := optparse.New().
		Register("v", "verbose", "", "enable verbose output").
		Register("s", "size", "SIZE", "set the size").
		Register("h", "help", "", "show this help")

	opts, remaining, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, parser.Help())
		os.Exit(1)
	}

	if help, _ := opts["help"].(bool); help {
		fmt.Println(parser.Help())
		os.Exit(0)
	}

Supported syntax:

	-v -s      independent short flags
	-vs        the same flags combined in one token
	-s 123     short flag with the value in the next token
	-s123      short flag with the value glued to the flag
	--size 123 long flag with the value in the next token
	--size=123 long flag with the value after =

Results are keyed by the option's long name when it has one, its short name
otherwise, converted to camelCase ("dry-run" becomes "dryRun"). Switches map
to true and value-bearing options map to the captured string.

The parser never prints and never exits; malformed invocations are reported
as errors for the caller to present.
*/
package optparse

import (
	"io"
	"log"
	"unicode/utf8"

	"github.com/optkit/optparse/internal/help"
	"github.com/optkit/optparse/internal/option"
)

// Debug Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Debug.SetOutput(os.Stderr)`
var Debug = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Result - parsed options keyed by the camel-cased option name. Values are
// true for switches and the captured string for value-bearing options.
type Result map[string]any

// Parser - ordered option registry and parsing engine.
// Lookup and help output follow registration order; for colliding names the
// first registered match wins. Not safe for concurrent use.
type Parser struct {
	options []*option.Option
}

// New - returns an empty Parser.
func New() *Parser {
	return &Parser{}
}

// Register - appends an option definition and returns the Parser to allow
// chained calls. Pass an empty string for any part the option does not have;
// an empty argName makes the option a boolean switch, a non-empty one is the
// label shown for its value in the help output.
//
// Register panics with a *ConfigurationError when short is longer than one
// character. It performs no duplicate detection: a colliding registration is
// shadowed by the earlier one during lookup.
func (p *Parser) Register(short, long, argName, description string) *Parser {
	Debug.Printf("registering option short: %q, long: %q, argName: %q", short, long, argName)
	if utf8.RuneCountInString(short) > 1 {
		panic(&ConfigurationError{Short: short})
	}
	p.options = append(p.options, option.New(short, long, argName, description))
	return p
}

// Help - returns the aligned option list, one line per option in
// registration order. Pure function of the registry state.
func (p *Parser) Help() string {
	return help.OptionList(p.options)
}
