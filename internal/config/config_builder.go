// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/accumulo-client-conf/internal/logger"
)

type sourceBuilder struct {
	env     Environment
	log     *logger.Logger
	sources []*Source
	err     error
}

func newSourceBuilder(e Environment, log *logger.Logger) *sourceBuilder {
	return &sourceBuilder{
		env:     e,
		log:     log,
		sources: make([]*Source, 0, 4),
	}
}

func (b *sourceBuilder) build() (*ClientConfiguration, error) {
	if b.err != nil {
		return nil, b.err
	}

	return New(b.sources...), nil
}

// withSearchPath loads every readable candidate in order. Absent or
// unreadable candidates are skipped; a candidate that fails to parse is fatal.
func (b *sourceBuilder) withSearchPath(paths []string) *sourceBuilder {
	for _, path := range paths {
		data, err := b.env.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
				b.log.Debug().Str("path", path).Err(err).Msg("skipping client configuration candidate")
				continue
			}
			b.log.Error().Str("path", path).Err(err).Msg("reading client configuration")
			b.err = errors.Join(b.err, fmt.Errorf("%w: %s: %w", ErrInvalidState, path, err))
			continue
		}

		src, err := ParseSource(path, data)
		if err != nil {
			b.log.Error().Str("path", path).Err(err).Msg("parsing client configuration")
			b.err = errors.Join(b.err, fmt.Errorf("%w: %s: %w", ErrInvalidState, path, err))
			continue
		}

		b.log.Debug().Str("path", path).Int("keys", src.Len()).Msg("loaded client configuration")
		b.sources = append(b.sources, src)
	}

	return b
}

// withFile loads a single named file that must exist.
func (b *sourceBuilder) withFile(path string) *sourceBuilder {
	data, err := b.env.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			b.err = errors.Join(b.err, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err))
			return b
		}
		b.err = errors.Join(b.err, fmt.Errorf("error reading %s: %w", path, err))
		return b
	}

	src, err := ParseSource(path, data)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing %s: %w", path, err))
		return b
	}

	b.log.Debug().Str("path", path).Int("keys", src.Len()).Msg("loaded client configuration")
	b.sources = append(b.sources, src)
	return b
}
