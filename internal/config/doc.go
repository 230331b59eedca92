// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the client-side configuration consulted before a
// session is established: instance identity, ZooKeeper address and timeout,
// and TLS material.
//
// # Sources & precedence
//
// A [ClientConfiguration] is an ordered stack of [Source] values viewed as one
// key/value mapping. The first source containing a key wins. Index 0 is always
// the in-memory overlay that receives every [ClientConfiguration.Set], so
// values set in-process shadow anything loaded from files. Keys found in no
// source fall back to the [ClientProperty] default.
//
// # Default search path
//
// [LoadDefault] reads, highest priority first:
//
//  1. every entry of $ACCUMULO_CLIENT_CONF_PATH (split on the OS path list
//     separator), if the variable is set; otherwise
//  2. ~/.accumulo/config
//  3. $ACCUMULO_CONF_DIR/client.conf, or $ACCUMULO_HOME/conf/client.conf when
//     ACCUMULO_CONF_DIR is unset
//  4. /etc/accumulo/client.conf
//
// A variable set to the empty string counts as unset, so an empty
// ACCUMULO_CLIENT_CONF_PATH falls through to the built-in list and an empty
// ACCUMULO_CONF_DIR falls back to ACCUMULO_HOME.
//
// Missing or unreadable candidates are skipped. A candidate that exists but
// cannot be parsed fails the whole load with [ErrInvalidState].
//
// Files and serialized blobs use the Java properties format.
package config
