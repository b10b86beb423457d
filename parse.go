// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"strings"

	"github.com/optkit/optparse/internal/cursor"
	"github.com/optkit/optparse/internal/option"
)

// Parse - parses args into a fresh Result. See ParseInto.
func (p *Parser) Parse(args []string) (Result, []string, error) {
	return p.ParseInto(args, Result{})
}

// ParseInto - consumes recognized options from the front of args and records
// them into result. Parsing stops at the first token that does not start
// with a dash or when args runs out; the unconsumed remainder is returned in
// original order. A nil result is replaced with an empty one; pre-existing
// keys not touched by parsing remain unchanged, so a pre-populated result
// acts as a set of defaults.
//
// On error the returned remainder is the sequence exactly as it was at the
// point of failure and result keeps everything recorded up to that point.
func (p *Parser) ParseInto(args []string, result Result) (Result, []string, error) {
	if result == nil {
		result = Result{}
	}
	c := cursor.New(args)
	for !c.Done() {
		token := c.Head()
		if !strings.HasPrefix(token, "-") {
			Debug.Printf("stopping at non option token %q", token)
			break
		}
		var err error
		if strings.HasPrefix(token, "--") {
			err = p.parseLong(c, strings.TrimPrefix(token, "--"), result)
		} else {
			err = p.parseShortCluster(c, strings.TrimPrefix(token, "-"), result)
		}
		if err != nil {
			return result, c.Rest(), err
		}
	}
	return result, c.Rest(), nil
}

// parseShortCluster - handles a token body like "abc" or "avalue": each
// character is a short flag until a value-bearing one is reached, which takes
// the rest of the cluster, or the next token when the cluster is exhausted,
// as its value and ends the scan. Characters after a value-bearing flag are
// value text, never further flags.
func (p *Parser) parseShortCluster(c *cursor.Cursor, body string, result Result) error {
	pulledNext := false
	runes := []rune(body)
	for i, r := range runes {
		opt := p.findShort(string(r))
		if opt == nil {
			return &UnknownOptionError{Flag: "-" + string(r)}
		}
		if !opt.TakesValue() {
			Debug.Printf("switch -%s -> %s", opt.Short, opt.Key())
			result[opt.Key()] = true
			continue
		}
		if rest := string(runes[i+1:]); rest != "" {
			Debug.Printf("option -%s takes glued value %q", opt.Short, rest)
			result[opt.Key()] = rest
		} else {
			value, ok := c.PeekNext()
			if !ok {
				return &MissingValueError{Flag: "-" + opt.Short}
			}
			Debug.Printf("option -%s takes next token %q", opt.Short, value)
			result[opt.Key()] = value
			pulledNext = true
		}
		break
	}
	c.Advance()
	if pulledNext {
		c.Advance()
	}
	return nil
}

// parseLong - handles a token body like "verbose" or "size=123". The result
// key comes from the matched definition, so a long match still records under
// the long name even when a short name exists.
func (p *Parser) parseLong(c *cursor.Cursor, body string, result Result) error {
	opt := p.findLong(body)
	if opt == nil {
		return &UnknownOptionError{Flag: "--" + body}
	}
	if !opt.TakesValue() {
		Debug.Printf("switch --%s -> %s", opt.Long, opt.Key())
		result[opt.Key()] = true
		c.Advance()
		return nil
	}
	if body == opt.Long {
		value, ok := c.PeekNext()
		if !ok {
			return &MissingValueError{Flag: "--" + opt.Long}
		}
		Debug.Printf("option --%s takes next token %q", opt.Long, value)
		result[opt.Key()] = value
		c.Advance()
		c.Advance()
		return nil
	}
	value := body[len(opt.Long)+1:]
	if value == "" {
		return &MissingValueError{Flag: "--" + opt.Long}
	}
	Debug.Printf("option --%s takes value %q after =", opt.Long, value)
	result[opt.Key()] = value
	c.Advance()
	return nil
}

// findShort - first registered option with the given short name.
func (p *Parser) findShort(short string) *option.Option {
	for _, opt := range p.options {
		if opt.Short == short {
			return opt
		}
	}
	return nil
}

// findLong - first registered option whose long name equals body, or whose
// long name followed by '=' prefixes body.
func (p *Parser) findLong(body string) *option.Option {
	for _, opt := range p.options {
		if opt.Long == body {
			return opt
		}
		if strings.HasPrefix(body, opt.Long+"=") {
			return opt
		}
	}
	return nil
}
