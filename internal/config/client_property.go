// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/accumulo-client-conf/internal/property"

// ClientProperty describes one property key recognized by the client.
// Values are immutable once the package is initialized.
type ClientProperty struct {
	key          string
	defaultValue string
	hasDefault   bool
	typ          property.Type
	description  string

	// canonical is the server-side definition this property mirrors, if any.
	canonical *property.Property
}

func mirror(p *property.Property) *ClientProperty {
	def, ok := p.DefaultValue()
	return &ClientProperty{
		key:          p.Key(),
		defaultValue: def,
		hasDefault:   ok,
		typ:          p.Type(),
		description:  p.Description(),
		canonical:    p,
	}
}

func clientOnly(key string, typ property.Type, description string) *ClientProperty {
	return &ClientProperty{
		key:         key,
		typ:         typ,
		description: description,
	}
}

// Key returns the property key.
func (p *ClientProperty) Key() string {
	return p.key
}

// DefaultValue returns the default value and whether the property has one.
func (p *ClientProperty) DefaultValue() (string, bool) {
	return p.defaultValue, p.hasDefault
}

// Type returns the declared value type.
func (p *ClientProperty) Type() property.Type {
	return p.typ
}

// Description returns the human-readable description.
func (p *ClientProperty) Description() string {
	return p.description
}

// Canonical returns the server-side property this one mirrors, or nil for
// client-only properties.
func (p *ClientProperty) Canonical() *property.Property {
	return p.canonical
}

// Properties recognized by the client.
var (
	RPCSSLTruststorePath     = mirror(property.RPCSSLTruststorePath)
	RPCSSLTruststorePassword = mirror(property.RPCSSLTruststorePassword)
	RPCSSLTruststoreType     = mirror(property.RPCSSLTruststoreType)
	RPCSSLKeystorePath       = mirror(property.RPCSSLKeystorePath)
	RPCSSLKeystorePassword   = mirror(property.RPCSSLKeystorePassword)
	RPCSSLKeystoreType       = mirror(property.RPCSSLKeystoreType)
	RPCUseJSSE               = mirror(property.RPCUseJSSE)
	InstanceRPCSSLClientAuth = mirror(property.InstanceRPCSSLClientAuth)
	InstanceRPCSSLEnabled    = mirror(property.InstanceRPCSSLEnabled)
	InstanceZKHost           = mirror(property.InstanceZKHost)
	InstanceZKTimeout        = mirror(property.InstanceZKTimeout)

	InstanceName = clientOnly("instance.name", property.String, "Name of Accumulo instance to connect to")
	InstanceID   = clientOnly("instance.id", property.String, "UUID of Accumulo instance to connect to")
)

var clientProperties = []*ClientProperty{
	RPCSSLTruststorePath,
	RPCSSLTruststorePassword,
	RPCSSLTruststoreType,
	RPCSSLKeystorePath,
	RPCSSLKeystorePassword,
	RPCSSLKeystoreType,
	RPCUseJSSE,
	InstanceRPCSSLClientAuth,
	InstanceRPCSSLEnabled,
	InstanceZKHost,
	InstanceZKTimeout,
	InstanceName,
	InstanceID,
}

var clientPropertiesByKey = func() map[string]*ClientProperty {
	m := make(map[string]*ClientProperty, len(clientProperties))
	for _, p := range clientProperties {
		m[p.key] = p
	}
	return m
}()

// ClientProperties returns every recognized property in declaration order.
func ClientProperties() []*ClientProperty {
	out := make([]*ClientProperty, len(clientProperties))
	copy(out, clientProperties)
	return out
}

// LookupByKey returns the property registered under key.
func LookupByKey(key string) (*ClientProperty, bool) {
	p, ok := clientPropertiesByKey[key]
	return p, ok
}
