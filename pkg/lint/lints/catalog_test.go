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

package lints

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/status"
	"korrecte.dev/korrecte/pkg/testing/fake"
)

func TestCatalog(t *testing.T) {
	want := []string{
		"required_labels",
		"overlapping_probes",
		"never_restart_with_liveness_probe",
		"service_without_matching_labels",
		"service_target_port",
		"environment_passwords",
		"pdb_min_replicas",
		"statefulset_no_grace_period",
		"pod_requirements",
		"alb_ingress_controller_instance_misconfiguration",
		"alb_named_sg",
		"role_similar_names",
		"hpa_no_request",
		"deprecations",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Error(diff)
	}

	all := All(config.Default())
	require.Len(t, all, len(want))
	for i, l := range all {
		assert.Equal(t, want[i], l.Spec().Name)
		entry, found := Catalog.Get(l.Spec().Name)
		require.True(t, found)
		assert.Equal(t, entry.Group, l.Spec().Group)
		assert.NotEmpty(t, entry.Description)
	}
}

func TestSelect(t *testing.T) {
	testCases := []struct {
		name      string
		only      []string
		wantNames []string
		wantErr   status.MultiError
	}{
		{
			name:      "empty selects all",
			wantNames: Names(),
		},
		{
			name:      "catalog order is kept",
			only:      []string{"deprecations", "required_labels"},
			wantNames: []string{"required_labels", "deprecations"},
		},
		{
			name:    "unknown lint",
			only:    []string{"overlaping_probes"},
			wantErr: fake.Errors(status.UnknownLintErrorCode),
		},
		{
			name:    "every unknown lint is reported",
			only:    []string{"nope", "required_labels", "also_nope"},
			wantErr: fake.Errors(status.UnknownLintErrorCode, status.UnknownLintErrorCode),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Select(config.Default(), tc.only)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got Select() error %v, want %v", err, tc.wantErr)
			}
			var gotNames []string
			for _, l := range got {
				gotNames = append(gotNames, l.Spec().Name)
			}
			if diff := cmp.Diff(tc.wantNames, gotNames); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "overlaping_probes", want: "overlapping_probes"},
		{input: "deprecatoins", want: "deprecations"},
		{input: "something_else_entirely", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, Suggest(tc.input))
		})
	}
}

func TestUnknownLintMessage(t *testing.T) {
	_, err := Select(config.Default(), []string{"overlaping_probes"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), `did you mean "overlapping_probes"?`)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Overlapping Probes", Title("overlapping_probes"))
	assert.Equal(t, "Alb Named Sg", Title("alb_named_sg"))
}

func TestGroups(t *testing.T) {
	want := map[string]reporting.Group{
		"required_labels":       reporting.Audit,
		"role_similar_names":    reporting.Audit,
		"environment_passwords": reporting.Security,
		"pod_requirements":      reporting.Security,
		"overlapping_probes":    reporting.Configuration,
		"deprecations":          reporting.Configuration,
	}
	for name, group := range want {
		entry, found := Catalog.Get(name)
		require.True(t, found, name)
		assert.Equal(t, group, entry.Group, name)
	}
}
