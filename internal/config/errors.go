// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrNotFound indicates that an explicitly named configuration file or a
	// property key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrParse indicates malformed properties content.
	ErrParse = errors.New("malformed properties content")
	// ErrInvalidArgument indicates a missing required argument or an
	// undecodable serialized configuration.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState indicates that a file found on the search path could
	// not be loaded.
	ErrInvalidState = errors.New("error loading client configuration")
)
