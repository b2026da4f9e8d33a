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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"korrecte.dev/korrecte/pkg/status"
	"korrecte.dev/korrecte/pkg/testing/fake"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		want     Config
		wantErr  error
	}{
		{
			name:     "empty file keeps defaults",
			contents: "",
			want:     Default(),
		},
		{
			name: "namespaces",
			contents: `
[korrecte]
allowed_namespaces = ["prod"]
ignored_namespaces = ["kube-system", "kube-public"]
`,
			want: Config{
				Korrecte: KorrecteConfig{
					AllowedNamespaces: []string{"prod"},
					IgnoredNamespaces: []string{"kube-system", "kube-public"},
				},
				RequiredLabels:       Default().RequiredLabels,
				EnvironmentPasswords: Default().EnvironmentPasswords,
			},
		},
		{
			name: "lint options override defaults",
			contents: `
[required_labels]
labels = ["team"]

[environment_passwords]
suspicious_keys = ["secret"]
`,
			want: Config{
				RequiredLabels:       RequiredLabelsConfig{Labels: []string{"team"}},
				EnvironmentPasswords: EnvironmentPasswordsConfig{SuspiciousKeys: []string{"secret"}},
			},
		},
		{
			name:     "unknown options are ignored",
			contents: "[overlapping_probes]\nenabled = false\n",
			want:     Default(),
		},
		{
			name:     "invalid toml",
			contents: "[korrecte\nallowed_namespaces = 1",
			wantErr:  fake.Error(status.InvalidConfigErrorCode),
		},
		{
			name:     "wrong type",
			contents: "[korrecte]\nallowed_namespaces = \"prod\"\n",
			wantErr:  fake.Error(status.InvalidConfigErrorCode),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultPath)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0644))

			got, err := Load(path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got Load() error %v, want %v", err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Error(diff)
	}
}
