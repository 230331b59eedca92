// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource_KeepsFileOrder(t *testing.T) {
	src, err := ParseSource("/f.conf", []byte("z=1\na=2\n# skipped\nm=3\n"))
	require.NoError(t, err)

	assert.Equal(t, "/f.conf", src.Name())
	assert.Equal(t, []string{"z", "a", "m"}, src.Keys())
	assert.Equal(t, 3, src.Len())
}

func TestParseSource_ContinuationLines(t *testing.T) {
	src, err := ParseSource("/f.conf", []byte("instance.zookeeper.host=zk1:2181,\\\n    zk2:2181\n"))
	require.NoError(t, err)

	v, ok := src.Get("instance.zookeeper.host")
	require.True(t, ok)
	assert.Equal(t, "zk1:2181,zk2:2181", v)
}

func TestParseSource_Malformed(t *testing.T) {
	src, err := ParseSource("/f.conf", []byte("k=\\u00"))
	assert.Nil(t, src)
	assert.ErrorIs(t, err, ErrParse)
}

func TestSource_SetKeepsPosition(t *testing.T) {
	src := NewSource("s")
	src.Set("a", "1")
	src.Set("b", "2")
	src.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, src.Keys())
	v, _ := src.Get("a")
	assert.Equal(t, "3", v)
}

func TestSourceFromMap_SortedKeys(t *testing.T) {
	src := SourceFromMap("m", map[string]string{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, []string{"a", "b", "c"}, src.Keys())
}
