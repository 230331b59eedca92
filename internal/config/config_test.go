// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Get / Set ────────────────────────────────────────────────────────────────

func TestGet_ReturnsDefaultWhenUnset(t *testing.T) {
	cfg := New()

	for _, p := range ClientProperties() {
		want, wantOK := p.DefaultValue()
		got, ok := cfg.Get(p)
		assert.Equal(t, wantOK, ok, p.Key())
		assert.Equal(t, want, got, p.Key())
	}
}

func TestGet_NoDefaultIsUnresolved(t *testing.T) {
	v, ok := New().Get(InstanceName)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_ShadowsLowerSources(t *testing.T) {
	file := SourceFromMap("/etc/accumulo/client.conf", map[string]string{
		InstanceZKHost.Key(): "zk-file:2181",
	})
	cfg := New(file)

	v, _ := cfg.Get(InstanceZKHost)
	assert.Equal(t, "zk-file:2181", v)

	cfg.Set(InstanceZKHost, "zk-set:2181")

	v, _ = cfg.Get(InstanceZKHost)
	assert.Equal(t, "zk-set:2181", v)

	// file-backed sources are never written
	fv, _ := file.Get(InstanceZKHost.Key())
	assert.Equal(t, "zk-file:2181", fv)
}

func TestPrecedence_FirstSourceWins(t *testing.T) {
	a := SourceFromMap("a", map[string]string{"k": "a"})
	b := SourceFromMap("b", map[string]string{"k": "b"})

	v, ok := New(a, b).GetKey("k")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = New(b, a).GetKey("k")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestNew_IgnoresNilSources(t *testing.T) {
	cfg := New(nil, SourceFromMap("a", nil), nil)
	require.Len(t, cfg.Sources(), 2)
	assert.Equal(t, OverlaySourceName, cfg.Sources()[0].Name())
}

func TestSourceOf(t *testing.T) {
	cfg := New(
		SourceFromMap("first", map[string]string{"x": "1"}),
		SourceFromMap("second", map[string]string{"x": "2", "y": "3"}),
	)
	cfg.Set(InstanceName, "inst")

	name, ok := cfg.SourceOf("x")
	require.True(t, ok)
	assert.Equal(t, "first", name)

	name, _ = cfg.SourceOf("y")
	assert.Equal(t, "second", name)

	name, _ = cfg.SourceOf(InstanceName.Key())
	assert.Equal(t, OverlaySourceName, name)

	_, ok = cfg.SourceOf("missing")
	assert.False(t, ok)
}

func TestKeys_PrecedenceOrderWithoutDuplicates(t *testing.T) {
	cfg := New(
		SourceFromMap("first", map[string]string{"b": "1", "a": "1"}),
		SourceFromMap("second", map[string]string{"a": "2", "c": "2"}),
	)
	cfg.Set(InstanceName, "inst")

	assert.Equal(t, []string{"instance.name", "a", "b", "c"}, cfg.Keys())
	assert.True(t, cfg.ContainsKey("c"))
	assert.False(t, cfg.ContainsKey("d"))
}

// ── Serialize / Deserialize ──────────────────────────────────────────────────

func TestSerialize_RoundTrip(t *testing.T) {
	cfg := New().
		WithInstance("prod").
		WithZkHosts("zk1:2181,zk2:2181").
		WithZkTimeout(45).
		WithSSL(true).
		WithTruststore("/etc/ssl/trust.p12", StorePassword("changeit"), StoreType("pkcs12"))
	require.NoError(t, cfg.Err())

	restored, err := Deserialize(cfg.Serialize())
	require.NoError(t, err)

	for _, p := range ClientProperties() {
		if !cfg.ContainsKey(p.Key()) {
			continue
		}
		want, _ := cfg.Get(p)
		got, ok := restored.Get(p)
		assert.True(t, ok, p.Key())
		assert.Equal(t, want, got, p.Key())
	}
}

func TestSerialize_EffectiveValuesOnly(t *testing.T) {
	cfg := New(
		SourceFromMap("file", map[string]string{
			InstanceName.Key(): "from-file",
			"custom.key":       "kept",
		}),
	)
	cfg.Set(InstanceName, "from-overlay")

	restored, err := Deserialize(cfg.Serialize())
	require.NoError(t, err)

	v, _ := restored.Get(InstanceName)
	assert.Equal(t, "from-overlay", v)

	v, ok := restored.GetKey("custom.key")
	require.True(t, ok)
	assert.Equal(t, "kept", v)
}

func TestSerialize_DefaultsNotWritten(t *testing.T) {
	restored, err := Deserialize(New().Serialize())
	require.NoError(t, err)
	assert.Empty(t, restored.Keys())
}

func TestSerialize_SpecialCharacters(t *testing.T) {
	cfg := New().With(RPCSSLKeystorePassword, "p=ss:w#rd\\with\nnewline")

	restored, err := Deserialize(cfg.Serialize())
	require.NoError(t, err)

	v, _ := restored.Get(RPCSSLKeystorePassword)
	assert.Equal(t, "p=ss:w#rd\\with\nnewline", v)
}

func TestSerialize_KeysWithSeparatorsAndCommentMarkers(t *testing.T) {
	src, err := ParseSource(GlobalConfFilename, []byte("a\\=b=v\n\\#c=w\n\\!d=x\nk\\:e\\ f=y\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a=b", "#c", "!d", "k:e f"}, src.Keys())

	restored, err := Deserialize(New(src).Serialize())
	require.NoError(t, err)
	assert.Equal(t, []string{"a=b", "#c", "!d", "k:e f"}, restored.Keys())

	for key, want := range map[string]string{"a=b": "v", "#c": "w", "!d": "x", "k:e f": "y"} {
		v, ok := restored.GetKey(key)
		require.True(t, ok, key)
		assert.Equal(t, want, v, key)
	}
}

func TestSerialize_KeysAndValuesWithWhitespace(t *testing.T) {
	cfg := New(SourceFromMap("test", map[string]string{
		" lead\tkey": "  padded  ",
		"empty":       "",
		"unicode":     "zk-ü:2181",
		"backslash":   `C:\conf\`,
	}))

	restored, err := Deserialize(cfg.Serialize())
	require.NoError(t, err)

	for _, k := range cfg.Keys() {
		want, _ := cfg.GetKey(k)
		got, ok := restored.GetKey(k)
		require.True(t, ok, k)
		assert.Equal(t, want, got, k)
	}
}

func TestDeserialize_ParsesPropertiesFormat(t *testing.T) {
	blob := "# comment\n" +
		"instance.name = test\n" +
		"instance.zookeeper.host=zk:2181\n" +
		"! another comment\n" +
		"instance.rpc.ssl.enabled: true\n"

	cfg, err := Deserialize(blob)
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "test", v)
	v, _ = cfg.Get(InstanceZKHost)
	assert.Equal(t, "zk:2181", v)
	v, _ = cfg.Get(InstanceRPCSSLEnabled)
	assert.Equal(t, "true", v)

	name, _ := cfg.SourceOf(InstanceName.Key())
	assert.Equal(t, SerializedSourceName, name)
}

func TestDeserialize_KeepsReferencesLiteral(t *testing.T) {
	cfg, err := Deserialize("rpc.javax.net.ssl.trustStore=${ACCUMULO_CONF_DIR}/ssl/trust.jks\n")
	require.NoError(t, err)

	v, _ := cfg.Get(RPCSSLTruststorePath)
	assert.Equal(t, "${ACCUMULO_CONF_DIR}/ssl/trust.jks", v)
}

func TestDeserialize_Malformed(t *testing.T) {
	blob := "instance.name=\\uZZZZ\n"

	cfg, err := Deserialize(blob)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `instance.name=\\uZZZZ`)
}

func TestDeserialize_SetAfterwardsGoesToOverlay(t *testing.T) {
	cfg, err := Deserialize("instance.name=old\n")
	require.NoError(t, err)

	cfg.Set(InstanceName, "new")

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "new", v)
	name, _ := cfg.SourceOf(InstanceName.Key())
	assert.Equal(t, OverlaySourceName, name)
}
