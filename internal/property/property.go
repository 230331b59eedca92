// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package property holds the server-side property definitions that client
// configuration mirrors. Keys, defaults, types and descriptions here are the
// contract shared with the server and must not diverge from it.
package property

// Property is an immutable server-side property definition.
type Property struct {
	key          string
	defaultValue string
	hasDefault   bool
	typ          Type
	description  string
}

func define(key, defaultValue string, typ Type, description string) *Property {
	return &Property{
		key:          key,
		defaultValue: defaultValue,
		hasDefault:   true,
		typ:          typ,
		description:  description,
	}
}

// Key returns the property key, e.g. "instance.zookeeper.host".
func (p *Property) Key() string {
	return p.key
}

// DefaultValue returns the declared default and whether one exists.
func (p *Property) DefaultValue() (string, bool) {
	return p.defaultValue, p.hasDefault
}

// Type returns the declared value type.
func (p *Property) Type() Type {
	return p.typ
}

// Description returns the human-readable description.
func (p *Property) Description() string {
	return p.description
}

// Server-side properties the client has to agree on.
var (
	RPCSSLKeystoreType = define("rpc.javax.net.ssl.keyStoreType", "jks", String,
		"Type of SSL keystore")
	RPCSSLKeystorePath = define("rpc.javax.net.ssl.keyStore", "$ACCUMULO_CONF_DIR/ssl/keystore.jks", Path,
		"Path of the keystore file for the servers' private SSL key")
	RPCSSLKeystorePassword = define("rpc.javax.net.ssl.keyStorePassword", "", String,
		"Password used to encrypt the SSL private keystore. Leave blank to use the Accumulo instance secret")
	RPCSSLTruststoreType = define("rpc.javax.net.ssl.trustStoreType", "jks", String,
		"Type of SSL truststore")
	RPCSSLTruststorePath = define("rpc.javax.net.ssl.trustStore", "$ACCUMULO_CONF_DIR/ssl/truststore.jks", Path,
		"Path of the truststore file for the root cert")
	RPCSSLTruststorePassword = define("rpc.javax.net.ssl.trustStorePassword", "", String,
		"Password used to encrypt the SSL truststore. Leave blank to use no password")
	RPCUseJSSE = define("rpc.useJsse", "false", Boolean,
		"Use JSSE system properties to configure SSL rather than general.security.ssl.* Property values")

	InstanceZKHost = define("instance.zookeeper.host", "localhost:2181", HostList,
		"Comma separated list of zookeeper servers")
	InstanceZKTimeout = define("instance.zookeeper.timeout", "30s", TimeDuration,
		"Zookeeper session timeout; max value when represented as milliseconds should be no larger than 2147483647")
	InstanceRPCSSLEnabled = define("instance.rpc.ssl.enabled", "false", Boolean,
		"Use SSL for socket connections from clients and among accumulo services")
	InstanceRPCSSLClientAuth = define("instance.rpc.ssl.clientAuth", "false", Boolean,
		"Require clients to present certs signed by a trusted root")
)
