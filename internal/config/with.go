// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// StoreOption sets an optional trust or key store attribute.
type StoreOption func(*storeSettings)

type storeSettings struct {
	password *string
	typ      *string
}

// StorePassword sets the store password. An explicit empty password is stored.
func StorePassword(password string) StoreOption {
	return func(s *storeSettings) {
		s.password = &password
	}
}

// StoreType sets the store type, e.g. "pkcs12" or "pem".
func StoreType(typ string) StoreOption {
	return func(s *storeSettings) {
		s.typ = &typ
	}
}

// fail records an invalid argument without touching any source.
func (c *ClientConfiguration) fail(what string) *ClientConfiguration {
	c.err = errors.Join(c.err, fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, what))
	return c
}

// With sets prop to value and returns c.
func (c *ClientConfiguration) With(prop *ClientProperty, value string) *ClientConfiguration {
	if prop == nil {
		return c.fail("property")
	}
	c.Set(prop, value)
	return c
}

// WithInstance sets the instance name. An empty name is an invalid argument
// and leaves the configuration unchanged.
func (c *ClientConfiguration) WithInstance(name string) *ClientConfiguration {
	if name == "" {
		return c.fail("instance name")
	}
	return c.With(InstanceName, name)
}

// WithInstanceID sets the instance identifier in its canonical string form.
func (c *ClientConfiguration) WithInstanceID(id uuid.UUID) *ClientConfiguration {
	if id == uuid.Nil {
		return c.fail("instance id")
	}
	return c.With(InstanceID, id.String())
}

// WithZkHosts sets the comma separated ZooKeeper host list. An empty list is
// an invalid argument and leaves the configuration unchanged.
func (c *ClientConfiguration) WithZkHosts(hosts string) *ClientConfiguration {
	if hosts == "" {
		return c.fail("zookeeper hosts")
	}
	return c.With(InstanceZKHost, hosts)
}

// WithZkTimeout sets the ZooKeeper session timeout. A bare number is read as
// seconds.
func (c *ClientConfiguration) WithZkTimeout(timeout int) *ClientConfiguration {
	return c.With(InstanceZKTimeout, strconv.Itoa(timeout))
}

// WithSSL enables or disables TLS without JSSE system configuration.
func (c *ClientConfiguration) WithSSL(enabled bool) *ClientConfiguration {
	return c.WithSSLJSSE(enabled, false)
}

// WithSSLJSSE enables or disables TLS and selects whether JSSE system
// properties configure it.
func (c *ClientConfiguration) WithSSLJSSE(enabled, useJSSE bool) *ClientConfiguration {
	return c.With(InstanceRPCSSLEnabled, strconv.FormatBool(enabled)).
		With(RPCUseJSSE, strconv.FormatBool(useJSSE))
}

// WithTruststore sets the trust store path and, when given, its password and
// type. Omitted options leave the existing values untouched.
func (c *ClientConfiguration) WithTruststore(path string, opts ...StoreOption) *ClientConfiguration {
	if path == "" {
		return c.fail("truststore path")
	}

	s := applyStoreOptions(opts)
	c.Set(RPCSSLTruststorePath, path)
	if s.password != nil {
		c.Set(RPCSSLTruststorePassword, *s.password)
	}
	if s.typ != nil {
		c.Set(RPCSSLTruststoreType, *s.typ)
	}
	return c
}

// WithKeystore sets the key store path, its optional password and type, and
// turns client certificate authentication on.
func (c *ClientConfiguration) WithKeystore(path string, opts ...StoreOption) *ClientConfiguration {
	if path == "" {
		return c.fail("keystore path")
	}

	s := applyStoreOptions(opts)
	c.Set(InstanceRPCSSLClientAuth, "true")
	c.Set(RPCSSLKeystorePath, path)
	if s.password != nil {
		c.Set(RPCSSLKeystorePassword, *s.password)
	}
	if s.typ != nil {
		c.Set(RPCSSLKeystoreType, *s.typ)
	}
	return c
}

func applyStoreOptions(opts []StoreOption) storeSettings {
	var s storeSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
