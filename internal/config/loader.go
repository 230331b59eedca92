// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/accumulo-client-conf/internal/logger"
)

// Loader builds configurations from files found through an [Environment].
type Loader struct {
	env Environment
	log *logger.Logger
}

// NewLoader returns a Loader. A nil log disables logging.
func NewLoader(e Environment, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{env: e, log: log.GetChildLogger("config")}
}

// SearchPath returns the candidate files, highest priority first.
func (l *Loader) SearchPath() ([]string, error) {
	vars, err := resolveSearchVars(l.env)
	if err != nil {
		return nil, err
	}
	return vars.searchPath(), nil
}

// LoadDefault composes every readable file on the search path.
func (l *Loader) LoadDefault() (*ClientConfiguration, error) {
	paths, err := l.SearchPath()
	if err != nil {
		return nil, err
	}

	return newSourceBuilder(l.env, l.log).
		withSearchPath(paths).
		build()
}

// LoadOverride loads filename as the only source. An empty filename falls back
// to [Loader.LoadDefault]. A missing file fails with [ErrNotFound] and
// malformed content with [ErrParse].
func (l *Loader) LoadOverride(filename string) (*ClientConfiguration, error) {
	if filename == "" {
		return l.LoadDefault()
	}

	return newSourceBuilder(l.env, l.log).
		withFile(filename).
		build()
}

// LoadDefault is [Loader.LoadDefault] on the process environment.
func LoadDefault() (*ClientConfiguration, error) {
	return NewLoader(OSEnvironment(), nil).LoadDefault()
}

// LoadOverride is [Loader.LoadOverride] on the process environment.
func LoadOverride(filename string) (*ClientConfiguration, error) {
	return NewLoader(OSEnvironment(), nil).LoadOverride(filename)
}
