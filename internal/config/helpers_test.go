// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"io/fs"
)

// fakeEnv is an in-memory Environment.
type fakeEnv struct {
	vars  map[string]string
	home  string
	files map[string]string
}

func (f *fakeEnv) Environ() map[string]string {
	if f.vars == nil {
		return map[string]string{}
	}
	return f.vars
}

func (f *fakeEnv) HomeDir() (string, error) {
	if f.home == "" {
		return "", errors.New("home directory unknown")
	}
	return f.home, nil
}

func (f *fakeEnv) ReadFile(name string) ([]byte, error) {
	data, ok := f.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}
