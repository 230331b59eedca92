// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"

	"github.com/magiconair/properties"
)

// Source names used for sources that are not backed by a file.
const (
	OverlaySourceName    = "overlay"
	SerializedSourceName = "serialized"
)

// Source is one ordered key/value mapping, typically loaded from a properties
// file. Keys keep their load or insertion order.
type Source struct {
	name  string
	props *properties.Properties
}

func newProperties() *properties.Properties {
	p := properties.NewProperties()
	// ${...} is kept literally; values are never interpolated.
	p.DisableExpansion = true
	return p
}

// NewSource returns an empty source.
func NewSource(name string) *Source {
	return &Source{name: name, props: newProperties()}
}

// ParseSource parses properties-format data into a source named name.
// Malformed content is reported as [ErrParse].
func ParseSource(name string, data []byte) (*Source, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	p.DisableExpansion = true

	return &Source{name: name, props: p}, nil
}

// SourceFromMap builds a source from m. Keys are inserted in sorted order.
func SourceFromMap(name string, m map[string]string) *Source {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := NewSource(name)
	for _, k := range keys {
		s.Set(k, m[k])
	}
	return s
}

// Name identifies the source: a file path, [OverlaySourceName] or
// [SerializedSourceName].
func (s *Source) Name() string {
	return s.name
}

// Get returns the value stored under key.
func (s *Source) Get(key string) (string, bool) {
	return s.props.Get(key)
}

// Set stores value under key, keeping the key's original position if it
// already exists.
func (s *Source) Set(key, value string) {
	// Set only fails on circular ${} references, which cannot occur with
	// expansion disabled.
	_, _, _ = s.props.Set(key, value)
}

// Keys returns the keys in order.
func (s *Source) Keys() []string {
	return s.props.Keys()
}

// Len returns the number of keys.
func (s *Source) Len() int {
	return s.props.Len()
}
