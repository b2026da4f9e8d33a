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

package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8sfake "k8s.io/client-go/kubernetes/fake"
	"korrecte.dev/korrecte/pkg/metrics"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/repository"
	"korrecte.dev/korrecte/pkg/status"
	"korrecte.dev/korrecte/pkg/testing/fake"
)

const manifests = `apiVersion: v1
kind: Pod
metadata:
  name: unlabeled
  namespace: prod
spec:
  containers:
  - name: app
    image: app
---
apiVersion: v1
kind: Secret
metadata:
  name: skipped
---
apiVersion: apps/v1
kind: StatefulSet
metadata:
  name: db
  namespace: kube-system
spec:
  template:
    spec:
      terminationGracePeriodSeconds: 0
      containers:
      - name: db
        image: db
`

const korrecteToml = `
[korrecte]
ignored_namespaces = ["kube-system"]

[required_labels]
labels = ["team"]
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestExecuteFile(t *testing.T) {
	params := Params{
		Source:     repository.SourceFile,
		Path:       writeFile(t, "manifests.yaml", manifests),
		ConfigPath: writeFile(t, "korrecte.toml", korrecteToml),
		Only:       []string{"required_labels", "statefulset_no_grace_period"},
	}
	before := testutil.ToFloat64(metrics.Metrics.Findings.WithLabelValues("required_labels", string(reporting.Audit)))

	got, err := Execute(context.Background(), params)
	require.NoError(t, err)

	want := []reporting.Finding{
		{
			Spec:      reporting.Spec{Group: reporting.Audit, Name: "required_labels"},
			Name:      "unlabeled",
			Namespace: "prod",
			Metadata:  map[string]string{"missing_labels": "team"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
	after := testutil.ToFloat64(metrics.Metrics.Findings.WithLabelValues("required_labels", string(reporting.Audit)))
	assert.Equal(t, before+1, after)
}

func TestExecuteAPI(t *testing.T) {
	clientset := k8sfake.NewClientset(
		&corev1.Service{
			ObjectMeta: metav1.ObjectMeta{Name: "orphan", Namespace: "prod"},
			Spec:       corev1.ServiceSpec{Selector: map[string]string{"app": "gone"}},
		},
	)
	params := Params{
		Source:     repository.SourceAPI,
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Only:       []string{"service_without_matching_labels"},
		Clientset:  clientset,
	}

	got, err := Execute(context.Background(), params)
	require.NoError(t, err)
	want := []reporting.Finding{
		{
			Spec:      reporting.Spec{Group: reporting.Configuration, Name: "service_without_matching_labels"},
			Name:      "orphan",
			Namespace: "prod",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestExecuteErrors(t *testing.T) {
	testCases := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name: "unknown lint",
			params: Params{
				Source: repository.SourceFile,
				Path:   writeFile(t, "manifests.yaml", manifests),
				Only:   []string{"overlaping_probes"},
			},
			wantErr: fake.Errors(status.UnknownLintErrorCode),
		},
		{
			name:    "missing path",
			params:  Params{Source: repository.SourceFile},
			wantErr: fake.Error(status.InvalidOptionErrorCode),
		},
		{
			name:    "unknown source",
			params:  Params{Source: "git"},
			wantErr: fake.Error(status.InvalidOptionErrorCode),
		},
		{
			name:    "unreadable path",
			params:  Params{Source: repository.SourceFile, Path: filepath.Join(t.TempDir(), "missing")},
			wantErr: fake.Errors(status.PathErrorCode),
		},
		{
			name: "invalid config",
			params: Params{
				Source:     repository.SourceFile,
				Path:       writeFile(t, "manifests.yaml", manifests),
				ConfigPath: writeFile(t, "korrecte.toml", "[korrecte"),
			},
			wantErr: fake.Error(status.InvalidConfigErrorCode),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.params.ConfigPath == "" {
				tc.params.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
			}
			_, err := Execute(context.Background(), tc.params)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got Execute() error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

const kubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://127.0.0.1:6443
contexts:
- name: test
  context:
    cluster: test
    user: test
users:
- name: test
  user:
    token: token
current-context: test
`

func TestRestConfig(t *testing.T) {
	t.Setenv("KUBECONFIG", writeFile(t, "kubeconfig", kubeconfig))

	cfg, err := restConfig("test", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://127.0.0.1:6443", cfg.Host)
	assert.Equal(t, time.Second, cfg.Timeout)

	_, err = restConfig("missing", time.Second)
	if !errors.Is(err, fake.Error(status.InvalidOptionErrorCode)) {
		t.Errorf("got restConfig() error %v, want %v", err, status.InvalidOptionErrorCode)
	}
}
