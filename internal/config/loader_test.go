// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_LoadDefault_ComposesInSearchOrder(t *testing.T) {
	e := &fakeEnv{
		vars: map[string]string{"ACCUMULO_HOME": "/opt/acc"},
		home: "/home/alice",
		files: map[string]string{
			"/home/alice/.accumulo/config": "instance.name=user\n",
			"/opt/acc/conf/client.conf":    "instance.name=install\ninstance.zookeeper.host=zk-install:2181\n",
			"/etc/accumulo/client.conf":    "instance.name=system\ninstance.zookeeper.host=zk-system:2181\ninstance.zookeeper.timeout=5s\n",
		},
	}

	cfg, err := NewLoader(e, nil).LoadDefault()
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "user", v)
	v, _ = cfg.Get(InstanceZKHost)
	assert.Equal(t, "zk-install:2181", v)
	v, _ = cfg.Get(InstanceZKTimeout)
	assert.Equal(t, "5s", v)

	names := make([]string, 0)
	for _, s := range cfg.Sources() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		OverlaySourceName,
		"/home/alice/.accumulo/config",
		"/opt/acc/conf/client.conf",
		"/etc/accumulo/client.conf",
	}, names)
}

func TestLoader_LoadDefault_NothingFound(t *testing.T) {
	cfg, err := NewLoader(&fakeEnv{home: "/home/alice"}, nil).LoadDefault()
	require.NoError(t, err)

	v, ok := cfg.Get(InstanceZKHost)
	assert.True(t, ok)
	assert.Equal(t, "localhost:2181", v)
}

func TestLoader_LoadDefault_MalformedFails(t *testing.T) {
	e := &fakeEnv{
		home:  "/home/alice",
		files: map[string]string{"/etc/accumulo/client.conf": "x=\\u00"},
	}

	cfg, err := NewLoader(e, nil).LoadDefault()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestLoader_LoadOverride(t *testing.T) {
	e := &fakeEnv{
		home: "/home/alice",
		files: map[string]string{
			"/home/alice/.accumulo/config": "instance.name=user\n",
			"/tmp/override.conf":           "instance.zookeeper.host=zk-override:2181\n",
		},
	}

	cfg, err := NewLoader(e, nil).LoadOverride("/tmp/override.conf")
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceZKHost)
	assert.Equal(t, "zk-override:2181", v)

	// the search path is not consulted
	_, ok := cfg.Get(InstanceName)
	assert.False(t, ok)
}

func TestLoader_LoadOverride_EmptyFallsBackToDefault(t *testing.T) {
	e := &fakeEnv{
		home:  "/home/alice",
		files: map[string]string{"/home/alice/.accumulo/config": "instance.name=user\n"},
	}

	cfg, err := NewLoader(e, nil).LoadOverride("")
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "user", v)
}

func TestLoader_LoadOverride_Missing(t *testing.T) {
	cfg, err := NewLoader(&fakeEnv{}, nil).LoadOverride("/nope.conf")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoader_LoadOverride_Malformed(t *testing.T) {
	e := &fakeEnv{files: map[string]string{"/bad.conf": "instance.name=\\uQ"}}

	_, err := NewLoader(e, nil).LoadOverride("/bad.conf")
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoadDefault_ProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	first := writeConf(t, dir, "first.conf", "instance.name=first\n")
	second := writeConf(t, dir, "second.conf", "instance.name=second\ninstance.id=6ba7b810-9dad-11d1-80b4-00c04fd430c8\n")
	missing := filepath.Join(dir, "missing.conf")

	t.Setenv("ACCUMULO_CLIENT_CONF_PATH", strings.Join([]string{missing, first, second}, string(os.PathListSeparator)))

	cfg, err := LoadDefault()
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "first", v)
	v, _ = cfg.Get(InstanceID)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", v)
}

func TestLoadOverride_ProcessFilesystem(t *testing.T) {
	path := writeConf(t, t.TempDir(), "client.conf", "instance.name=override\n")

	cfg, err := LoadOverride(path)
	require.NoError(t, err)

	v, _ := cfg.Get(InstanceName)
	assert.Equal(t, "override", v)

	_, err = LoadOverride(path + ".missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
