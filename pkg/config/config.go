// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the settings of a lint pass, loaded from a TOML file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/status"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "korrecte.toml"

// Config is the full set of options for a lint pass.
type Config struct {
	Korrecte             KorrecteConfig             `toml:"korrecte"`
	RequiredLabels       RequiredLabelsConfig       `toml:"required_labels"`
	EnvironmentPasswords EnvironmentPasswordsConfig `toml:"environment_passwords"`
}

// KorrecteConfig scopes which namespaces are linted.
type KorrecteConfig struct {
	// AllowedNamespaces, when non-empty, restricts linting to these namespaces.
	AllowedNamespaces []string `toml:"allowed_namespaces"`
	// IgnoredNamespaces are never linted. Takes precedence over AllowedNamespaces.
	IgnoredNamespaces []string `toml:"ignored_namespaces"`
}

// RequiredLabelsConfig configures the required_labels lint.
type RequiredLabelsConfig struct {
	Labels []string `toml:"labels"`
}

// EnvironmentPasswordsConfig configures the environment_passwords lint.
type EnvironmentPasswordsConfig struct {
	// SuspiciousKeys are matched case-insensitively as substrings of
	// environment variable names.
	SuspiciousKeys []string `toml:"suspicious_keys"`
}

// Default returns the Config used when no file is present.
func Default() Config {
	return Config{
		RequiredLabels: RequiredLabelsConfig{
			Labels: []string{"app", "role"},
		},
		EnvironmentPasswords: EnvironmentPasswordsConfig{
			SuspiciousKeys: []string{"password", "token", "key"},
		},
	}
}

// Load reads the config file at path. Options absent from the file keep their
// default value. A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			klog.Warningf("Config file %q not found, using defaults", path)
			return Default(), nil
		}
		return Config{}, status.InvalidConfigError(path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		klog.Warningf("Ignoring unknown options in %q: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
