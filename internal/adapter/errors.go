// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnsupportedStoreType is returned for store types that cannot be read,
	// such as Java "jks" key stores.
	ErrUnsupportedStoreType = errors.New("unsupported store type")
	// ErrNoCertificates is returned when a trust store holds no certificate.
	ErrNoCertificates = errors.New("no certificates found")
)
