// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package property

// Type tags the expected format of a property value. The tag is descriptive
// only: values are always stored as strings and are interpreted by readers.
type Type string

const (
	// String is free-form text.
	String Type = "string"

	// Boolean accepts "true" or "false".
	Boolean Type = "boolean"

	// Count is a non-negative integer.
	Count Type = "count"

	// TimeDuration is an integer with an optional unit suffix
	// (ms, s, m, h, d). A bare integer is read as seconds.
	TimeDuration Type = "duration"

	// Path is a filesystem path. It may reference environment variables
	// such as $ACCUMULO_CONF_DIR.
	Path Type = "path"

	// HostList is a comma separated list of host[:port] entries.
	HostList Type = "host list"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
