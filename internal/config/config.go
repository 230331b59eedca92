// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"unicode"
)

// ClientConfiguration is a composite, first-wins view over an ordered list of
// sources. The source at index 0 is the mutable overlay; every other source is
// read-only once composed.
//
// Reads are safe for concurrent use as long as no Set or With* call runs at
// the same time.
type ClientConfiguration struct {
	sources []*Source

	// err accumulates invalid builder arguments, see Err.
	err error
}

// New composes sources in the given order, which is also their precedence
// order. A fresh overlay is placed in front of them. Nil sources are ignored.
func New(sources ...*Source) *ClientConfiguration {
	c := &ClientConfiguration{
		sources: make([]*Source, 0, len(sources)+1),
	}
	c.sources = append(c.sources, NewSource(OverlaySourceName))
	for _, s := range sources {
		if s != nil {
			c.sources = append(c.sources, s)
		}
	}

	return c
}

// Deserialize parses a blob produced by [ClientConfiguration.Serialize].
// Malformed content fails with an error matching both [ErrInvalidArgument]
// and [ErrParse]; the message includes the offending content.
func Deserialize(serialized string) (*ClientConfiguration, error) {
	src, err := ParseSource(SerializedSourceName, []byte(serialized))
	if err != nil {
		return nil, fmt.Errorf("%w: error deserializing client configuration: %q: %w",
			ErrInvalidArgument, serialized, err)
	}

	return New(src), nil
}

// Sources returns the composed sources, overlay first.
func (c *ClientConfiguration) Sources() []*Source {
	out := make([]*Source, len(c.sources))
	copy(out, c.sources)
	return out
}

func (c *ClientConfiguration) overlay() *Source {
	return c.sources[0]
}

// GetKey returns the effective value for key from the first source that
// contains it. Defaults are not consulted.
func (c *ClientConfiguration) GetKey(key string) (string, bool) {
	for _, s := range c.sources {
		if v, ok := s.Get(key); ok {
			return v, true
		}
	}
	return "", false
}

// SourceOf returns the name of the source holding the effective value for key.
func (c *ClientConfiguration) SourceOf(key string) (string, bool) {
	for _, s := range c.sources {
		if _, ok := s.Get(key); ok {
			return s.name, true
		}
	}
	return "", false
}

// ContainsKey reports whether any source stores a value for key.
func (c *ClientConfiguration) ContainsKey(key string) bool {
	_, ok := c.GetKey(key)
	return ok
}

// Get returns the effective value of prop, falling back to its default.
// The boolean is false when no source stores the key and prop has no default.
func (c *ClientConfiguration) Get(prop *ClientProperty) (string, bool) {
	if v, ok := c.GetKey(prop.key); ok {
		return v, true
	}
	return prop.DefaultValue()
}

// Set writes value for prop into the overlay.
func (c *ClientConfiguration) Set(prop *ClientProperty, value string) {
	c.overlay().Set(prop.key, value)
}

// Keys returns every stored key once, in precedence order of first
// appearance.
func (c *ClientConfiguration) Keys() []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, s := range c.sources {
		for _, k := range s.Keys() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Serialize flattens the effective stored values into one properties-format
// string. Defaults are not written. The result is accepted by [Deserialize].
func (c *ClientConfiguration) Serialize() string {
	var sb strings.Builder
	for _, k := range c.Keys() {
		v, _ := c.GetKey(k)
		sb.WriteString(escapeProperty(k, keySpecials))
		sb.WriteString(" = ")
		sb.WriteString(escapeProperty(v, ""))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// keySpecials must be escaped anywhere in a key so the key neither ends early
// nor turns its line into a comment.
const keySpecials = " :=#!"

// escapeProperty encodes s for the left or right side of a properties line.
// Control characters and the backslash are always escaped, as is leading
// whitespace.
func escapeProperty(s, specials string) string {
	var sb strings.Builder
	for i, r := range s {
		switch r {
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if strings.ContainsRune(specials, r) || (i == 0 && unicode.IsSpace(r)) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Err returns the accumulated invalid-argument errors of With* calls, or nil.
func (c *ClientConfiguration) Err() error {
	return c.err
}
