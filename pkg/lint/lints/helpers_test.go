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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/object"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/repository"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"
)

// decode parses a single manifest.
func decode(t *testing.T, manifest string) client.Object {
	t.Helper()
	var typeMeta metav1.TypeMeta
	require.NoError(t, yaml.Unmarshal([]byte(manifest), &typeMeta))
	obj, err := object.Decode([]byte(manifest), typeMeta.APIVersion, typeMeta.Kind)
	require.NoError(t, err)
	return obj
}

// run evaluates the lint named name over objs and returns its findings.
func run(t *testing.T, name string, version *repository.Version, objs ...client.Object) []reporting.Finding {
	t.Helper()
	return runWithConfig(t, name, config.Default(), version, objs...)
}

func runWithConfig(t *testing.T, name string, cfg config.Config, version *repository.Version, objs ...client.Object) []reporting.Finding {
	t.Helper()
	lints, err := Select(cfg, []string{name})
	require.Nil(t, err)
	require.Len(t, lints, 1)

	reporter := reporting.NewBuffer()
	lint.Evaluate(lint.NewContext(repository.New(objs, version), reporter, cfg), lints)
	return reporter.Findings()
}

// finding builds the expected finding of the lint spec against a named
// object.
func finding(spec reporting.Spec, name, namespace string, metadata map[string]string) reporting.Finding {
	return reporting.Finding{Spec: spec, Name: name, Namespace: namespace, Metadata: metadata}
}

func checkFindings(t *testing.T, want, got []reporting.Finding) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}
