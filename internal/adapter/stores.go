// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"golang.org/x/crypto/pkcs12"
)

// Store types understood by the adapter.
const (
	StoreTypePEM    = "pem"
	StoreTypePKCS12 = "pkcs12"
)

// normalizeStoreType folds aliases onto the supported store types.
func normalizeStoreType(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pem":
		return StoreTypePEM, nil
	case "pkcs12", "p12", "pfx":
		return StoreTypePKCS12, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStoreType, raw)
	}
}

// parseTrustStore returns every certificate found in data.
func parseTrustStore(data []byte, storeType, password string) ([]*x509.Certificate, error) {
	typ, err := normalizeStoreType(storeType)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block
	switch typ {
	case StoreTypePEM:
		for rest := data; ; {
			var block *pem.Block
			block, rest = pem.Decode(rest)
			if block == nil {
				break
			}
			blocks = append(blocks, block)
		}
	case StoreTypePKCS12:
		blocks, err = pkcs12.ToPEM(data, password)
		if err != nil {
			return nil, fmt.Errorf("error decoding pkcs12 truststore: %w", err)
		}
	}

	certs := make([]*x509.Certificate, 0, len(blocks))
	for _, block := range blocks {
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("error parsing certificate: %w", err)
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// parseKeyStore returns the client certificate chain and key held in data.
// PEM key stores must contain both the certificate and the private key.
func parseKeyStore(data []byte, storeType, password string) (tls.Certificate, error) {
	typ, err := normalizeStoreType(storeType)
	if err != nil {
		return tls.Certificate{}, err
	}

	pemData := data
	if typ == StoreTypePKCS12 {
		blocks, err := pkcs12.ToPEM(data, password)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("error decoding pkcs12 keystore: %w", err)
		}

		pemData = nil
		for _, block := range blocks {
			pemData = append(pemData, pem.EncodeToMemory(block)...)
		}
	}

	pair, err := tls.X509KeyPair(pemData, pemData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("error parsing keystore: %w", err)
	}
	return pair, nil
}
