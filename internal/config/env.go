// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=env.go -destination=../mock/environment_mock.go -package=mock

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Fixed names used to build the default search path.
const (
	UserAccumuloDirName = ".accumulo"
	UserConfFilename    = "config"
	GlobalConfFilename  = "client.conf"
	SystemConfDir       = "/etc/accumulo"
)

// Environment supplies environment variables, the home directory and file
// reads to the loaders.
type Environment interface {
	// Environ returns the environment variables as a map.
	Environ() map[string]string
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
}

type osEnvironment struct{}

// OSEnvironment returns the process environment and the local filesystem.
func OSEnvironment() Environment {
	return osEnvironment{}
}

func (osEnvironment) Environ() map[string]string {
	return env.ToMap(os.Environ())
}

func (osEnvironment) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (osEnvironment) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// searchVars holds the variables that shape the default search path.
type searchVars struct {
	ClientConfPath string `env:"ACCUMULO_CLIENT_CONF_PATH"`
	ConfDir        string `env:"ACCUMULO_CONF_DIR"`
	Home           string `env:"ACCUMULO_HOME"`
	UserHome       string `env:"HOME"`
}

func resolveSearchVars(e Environment) (searchVars, error) {
	var vars searchVars
	if err := env.ParseWithOptions(&vars, env.Options{Environment: e.Environ()}); err != nil {
		return searchVars{}, fmt.Errorf("error getting env configs: %w", err)
	}

	fallback := searchVars{}
	if home, err := e.HomeDir(); err == nil {
		fallback.UserHome = home
	}
	if err := mergo.Merge(&vars, fallback); err != nil {
		return searchVars{}, fmt.Errorf("error merging env configs: %w", err)
	}

	return vars, nil
}

// searchPath computes the candidate files, highest priority first.
func (v searchVars) searchPath() []string {
	if v.ClientConfPath != "" {
		return filepath.SplitList(v.ClientConfPath)
	}

	paths := make([]string, 0, 3)
	if v.UserHome != "" {
		paths = append(paths, filepath.Join(v.UserHome, UserAccumuloDirName, UserConfFilename))
	}
	if v.ConfDir != "" {
		paths = append(paths, filepath.Join(v.ConfDir, GlobalConfFilename))
	} else if v.Home != "" {
		paths = append(paths, filepath.Join(v.Home, "conf", GlobalConfFilename))
	}
	paths = append(paths, SystemConfDir+"/"+GlobalConfFilename)

	return paths
}
