// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (c *ClientConfiguration) require(prop *ClientProperty) (string, error) {
	v, ok := c.Get(prop)
	if !ok {
		return "", fmt.Errorf("%w: no value for %s", ErrNotFound, prop.key)
	}
	return v, nil
}

// GetBool reads prop as a boolean.
func (c *ClientConfiguration) GetBool(prop *ClientProperty) (bool, error) {
	v, err := c.require(prop)
	if err != nil {
		return false, err
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrParse, prop.key, err)
	}
	return b, nil
}

// GetInt reads prop as a decimal integer.
func (c *ClientConfiguration) GetInt(prop *ClientProperty) (int, error) {
	v, err := c.require(prop)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrParse, prop.key, err)
	}
	return n, nil
}

// GetDuration reads prop with [ParseTimeDuration].
func (c *ClientConfiguration) GetDuration(prop *ClientProperty) (time.Duration, error) {
	v, err := c.require(prop)
	if err != nil {
		return 0, err
	}

	d, err := ParseTimeDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", prop.key, err)
	}
	return d, nil
}

// GetInstanceID reads the instance identifier.
func (c *ClientConfiguration) GetInstanceID() (uuid.UUID, error) {
	v, err := c.require(InstanceID)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %w", ErrParse, InstanceID.key, err)
	}
	return id, nil
}

var durationUnits = []struct {
	suffix string
	unit   time.Duration
}{
	{"ms", time.Millisecond},
	{"s", time.Second},
	{"m", time.Minute},
	{"h", time.Hour},
	{"d", 24 * time.Hour},
}

// ParseTimeDuration parses an integer with an optional ms, s, m, h or d
// suffix. A bare integer is a number of seconds. Negative values and values
// that do not fit a [time.Duration] are rejected.
func ParseTimeDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	num, unit := s, time.Second
	for _, u := range durationUnits {
		if strings.HasSuffix(s, u.suffix) {
			num, unit = strings.TrimSuffix(s, u.suffix), u.unit
			break
		}
	}

	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid duration %q", ErrParse, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative duration %q", ErrParse, s)
	}
	if n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: duration %q overflows", ErrParse, s)
	}
	return time.Duration(n) * unit, nil
}
