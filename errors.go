// This file is part of optparse.
//
// Copyright (C) 2024-2026  The optparse authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package optparse

import (
	"errors"
	"fmt"
)

// ErrUnknownOption - Indicates that a token did not match any registered short or long name.
var ErrUnknownOption = errors.New("unknown option")

// ErrMissingValue - Indicates that a value-bearing option had no value available.
var ErrMissingValue = errors.New("missing value")

// UnknownOptionError - Carries the exact offending flag text, for example "-x" or "--name".
type UnknownOptionError struct {
	Flag string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option '%s'", e.Flag)
}

// Is - matches ErrUnknownOption for errors.Is.
func (e *UnknownOptionError) Is(target error) bool {
	return target == ErrUnknownOption
}

// MissingValueError - Carries the canonical flag text of the option that needed a value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for option '%s'", e.Flag)
}

// Is - matches ErrMissingValue for errors.Is.
func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// ConfigurationError - Indicates an invalid option definition. Register
// panics with it since a bad definition is a programming error, not an
// invocation error.
type ConfigurationError struct {
	Short string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("short option name '%s' must be a single character", e.Short)
}
