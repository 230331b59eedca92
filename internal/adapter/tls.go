// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter turns a resolved client configuration into the transport
// material a session needs: a TLS configuration and gRPC dial options.
//
// Store paths may reference environment variables ($ACCUMULO_CONF_DIR in the
// server defaults); they are expanded from the [config.Environment] that also
// reads the store files.
package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/MKhiriev/accumulo-client-conf/internal/config"
	"github.com/MKhiriev/accumulo-client-conf/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

// TransportAdapter builds TLS material from a [config.ClientConfiguration].
type TransportAdapter struct {
	env    config.Environment
	logger *logger.Logger
}

// NewTransportAdapter returns a TransportAdapter. A nil log disables logging.
func NewTransportAdapter(env config.Environment, log *logger.Logger) *TransportAdapter {
	if log == nil {
		log = logger.Nop()
	}
	return &TransportAdapter{env: env, logger: log.GetChildLogger("adapter")}
}

// TLSConfig returns nil when instance.rpc.ssl.enabled is false.
//
// With rpc.useJsse the system roots are used and no store is read. Otherwise
// the trust store provides RootCAs, and the key store is loaded only when
// instance.rpc.ssl.clientAuth is true.
func (a *TransportAdapter) TLSConfig(cfg *config.ClientConfiguration) (*tls.Config, error) {
	enabled, err := cfg.GetBool(config.InstanceRPCSSLEnabled)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, nil
	}

	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

	useJSSE, err := cfg.GetBool(config.RPCUseJSSE)
	if err != nil {
		return nil, err
	}
	if useJSSE {
		pool, err := x509.SystemCertPool()
		if err != nil {
			return nil, fmt.Errorf("error loading system roots: %w", err)
		}
		tlsCfg.RootCAs = pool
		a.logger.Debug().Msg("using system trust roots")
		return tlsCfg, nil
	}

	if tlsCfg.RootCAs, err = a.loadTrustStore(cfg); err != nil {
		return nil, err
	}

	clientAuth, err := cfg.GetBool(config.InstanceRPCSSLClientAuth)
	if err != nil {
		return nil, err
	}
	if clientAuth {
		pair, err := a.loadKeyStore(cfg)
		if err != nil {
			return nil, err
		}
		tlsCfg.Certificates = []tls.Certificate{pair}
	}

	return tlsCfg, nil
}

// DialOptions returns the gRPC transport credentials matching cfg.
func (a *TransportAdapter) DialOptions(cfg *config.ClientConfiguration) ([]grpc.DialOption, error) {
	tlsCfg, err := a.TLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	if tlsCfg == nil {
		return []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, nil
	}
	return []grpc.DialOption{grpc.WithTransportCredentials(credentials.NewTLS(tlsCfg))}, nil
}

func (a *TransportAdapter) loadTrustStore(cfg *config.ClientConfiguration) (*x509.CertPool, error) {
	path, data, err := a.readStore(cfg, config.RPCSSLTruststorePath)
	if err != nil {
		return nil, err
	}

	typ, _ := cfg.Get(config.RPCSSLTruststoreType)
	password, _ := cfg.Get(config.RPCSSLTruststorePassword)

	certs, err := parseTrustStore(data, typ, password)
	if err != nil {
		return nil, fmt.Errorf("truststore %s: %w", path, err)
	}

	pool := x509.NewCertPool()
	for _, cert := range certs {
		pool.AddCert(cert)
	}

	a.logger.Debug().Str("path", path).Int("certificates", len(certs)).Msg("loaded truststore")
	return pool, nil
}

func (a *TransportAdapter) loadKeyStore(cfg *config.ClientConfiguration) (tls.Certificate, error) {
	path, data, err := a.readStore(cfg, config.RPCSSLKeystorePath)
	if err != nil {
		return tls.Certificate{}, err
	}

	typ, _ := cfg.Get(config.RPCSSLKeystoreType)
	password, _ := cfg.Get(config.RPCSSLKeystorePassword)

	pair, err := parseKeyStore(data, typ, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("keystore %s: %w", path, err)
	}

	a.logger.Debug().Str("path", path).Msg("loaded keystore")
	return pair, nil
}

func (a *TransportAdapter) readStore(cfg *config.ClientConfiguration, prop *config.ClientProperty) (string, []byte, error) {
	raw, _ := cfg.Get(prop)

	vars := a.env.Environ()
	path := os.Expand(raw, func(key string) string {
		return vars[key]
	})

	data, err := a.env.ReadFile(path)
	if err != nil {
		return path, nil, fmt.Errorf("error reading %s: %w", prop.Key(), err)
	}
	return path, data, nil
}
