// Copyright 2024 Chunkdb, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the CLI driver's YAML configuration file: the
// default target chunk capacity new tables are created with and a
// list of bootstrap table names. cmd/chunkdbctl reads only the
// capacity; no table is bootstrapped from the list.
// None of this is part of the core engine, which always takes an
// explicit capacity; it exists purely for the convenience of
// cmd/chunkdbctl.
package config

import (
	"errors"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

// ConfigFileName is the file the driver looks for in the working
// directory.
const ConfigFileName = ".chunkdbconfig"

// ErrNoConfig is returned by Find when no config file is present; the
// driver falls back to built-in defaults in that case rather than
// treating it as fatal.
var ErrNoConfig = errors.New("no chunkdb config file found")

// Config is the driver's bootstrap configuration.
type Config struct {
	DefaultChunkCapacity uint32   `yaml:"default_chunk_capacity"`
	BootstrapTables      []string `yaml:"bootstrap_tables"`
}

// Default returns the built-in configuration used when no config
// file is present.
func Default() *Config {
	return &Config{DefaultChunkCapacity: 0}
}

// Find looks for ConfigFileName in dir and parses it, returning
// ErrNoConfig if absent.
func Find(dir string) (*Config, error) {
	path := dir + string(os.PathSeparator) + ConfigFileName
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoConfig
		}
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// WriteTo serialises c as YAML into ConfigFileName under dir.
func (c *Config) WriteTo(dir string) (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	path := dir + string(os.PathSeparator) + ConfigFileName
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
