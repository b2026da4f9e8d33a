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

package object

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
	rbacv1 "k8s.io/api/rbac/v1"
	"k8s.io/utils/ptr"
	"korrecte.dev/korrecte/pkg/status"
	"korrecte.dev/korrecte/pkg/testing/fake"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func manifest(apiVersion, kind string) []byte {
	return []byte(fmt.Sprintf(`apiVersion: %s
kind: %s
metadata:
  name: foo
  namespace: bar
  labels:
    app: foo
`, apiVersion, kind))
}

func TestDecodeSupportedTypes(t *testing.T) {
	testCases := []struct {
		apiVersion string
		kind       string
	}{
		{"v1", "Node"},
		{"v1", "Pod"},
		{"v1", "Service"},
		{"apps/v1", "DaemonSet"},
		{"apps/v1", "Deployment"},
		{"apps/v1", "ReplicaSet"},
		{"apps/v1", "StatefulSet"},
		{"policy/v1beta1", "PodDisruptionBudget"},
		{"autoscaling/v1", "HorizontalPodAutoscaler"},
		{"autoscaling/v2beta1", "HorizontalPodAutoscaler"},
		{"autoscaling/v2beta2", "HorizontalPodAutoscaler"},
		{"networking.k8s.io/v1beta1", "Ingress"},
		{"networking/v1beta1", "Ingress"},
		{"extensions/v1beta1", "Ingress"},
		{"rbac.authorization.k8s.io/v1", "ClusterRole"},
		{"rbac/v1", "Role"},
	}

	for _, tc := range testCases {
		t.Run(tc.apiVersion+" "+tc.kind, func(t *testing.T) {
			obj, err := Decode(manifest(tc.apiVersion, tc.kind), tc.apiVersion, tc.kind)
			require.NoError(t, err)
			assert.True(t, MatchesType(obj, tc.apiVersion, tc.kind))

			meta := Metadata(obj)
			require.NotNil(t, meta)
			assert.Equal(t, "foo", meta.Name)
			assert.Equal(t, "bar", meta.Namespace)
			assert.Equal(t, map[string]string{"app": "foo"}, meta.Labels)
		})
	}
}

func TestDecodeUnknownType(t *testing.T) {
	testCases := []struct {
		name       string
		apiVersion string
		kind       string
	}{
		{name: "unknown kind", apiVersion: "v1", kind: "ConfigMap"},
		{name: "unknown version", apiVersion: "apps/v1beta2", kind: "Deployment"},
		{name: "unknown group", apiVersion: "acme.com/v1", kind: "Anvil"},
		{name: "kind in wrong group", apiVersion: "apps/v1", kind: "Pod"},
		{name: "newer ingress", apiVersion: "networking.k8s.io/v1", kind: "Ingress"},
		{name: "empty", apiVersion: "", kind: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(manifest(tc.apiVersion, tc.kind), tc.apiVersion, tc.kind)
			if !errors.Is(err, fake.Error(status.UnknownTypeErrorCode)) {
				t.Errorf("got Decode() error %v, want %s", err, status.UnknownTypeErrorCode)
			}
		})
	}
}

func TestDecodeParseError(t *testing.T) {
	body := []byte(`apiVersion: apps/v1
kind: Deployment
metadata:
  name: foo
spec:
  replicas: many
`)
	_, err := Decode(body, "apps/v1", "Deployment")
	if !errors.Is(err, fake.Error(status.ObjectParseErrorCode)) {
		t.Errorf("got Decode() error %v, want %s", err, status.ObjectParseErrorCode)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	body := []byte(`apiVersion: v1
kind: Service
metadata:
  name: web
  owner: team-a
spec:
  selector:
    app: web
  loadBalancerClass2: internal
status:
  phase: Ready
`)
	obj, err := Decode(body, "v1", "Service")
	require.NoError(t, err)

	svc, ok := obj.(*corev1.Service)
	require.True(t, ok, "got %T, want *corev1.Service", obj)
	assert.Equal(t, "web", svc.Name)
	assert.Equal(t, map[string]string{"app": "web"}, svc.Spec.Selector)
}

func TestDecodeContent(t *testing.T) {
	body := []byte(`apiVersion: apps/v1
kind: Deployment
metadata:
  name: web
spec:
  replicas: 3
  selector:
    matchLabels:
      app: web
  template:
    metadata:
      labels:
        app: web
    spec:
      containers:
      - name: nginx
        image: nginx
        ports:
        - containerPort: 80
`)
	obj, err := Decode(body, "apps/v1", "Deployment")
	require.NoError(t, err)

	deployment, ok := obj.(*appsv1.Deployment)
	require.True(t, ok, "got %T, want *appsv1.Deployment", obj)
	assert.Equal(t, ptr.To[int32](3), deployment.Spec.Replicas)
	want := []corev1.Container{{
		Name:  "nginx",
		Image: "nginx",
		Ports: []corev1.ContainerPort{{ContainerPort: 80}},
	}}
	if diff := cmp.Diff(want, deployment.Spec.Template.Spec.Containers); diff != "" {
		t.Error(diff)
	}
}

func TestDecodeAliasIsCanonical(t *testing.T) {
	obj, err := Decode(manifest("networking/v1beta1", "Ingress"), "networking/v1beta1", "Ingress")
	require.NoError(t, err)

	_, ok := obj.(*networkingv1beta1.Ingress)
	require.True(t, ok)
	assert.Equal(t, "networking.k8s.io/v1beta1", obj.GetObjectKind().GroupVersionKind().GroupVersion().String())
	assert.True(t, MatchesType(obj, "networking.k8s.io/v1beta1", "Ingress"))
	assert.False(t, MatchesType(obj, "extensions/v1beta1", "Ingress"))
}

func TestParseType(t *testing.T) {
	testCases := []struct {
		apiVersion string
		kind       string
		want       Type
	}{
		{"v1", "Pod", Type{Group: CoreGroup, Version: "v1", Kind: "Pod"}},
		{"apps/v1", "Deployment", Type{Group: "apps", Version: "v1", Kind: "Deployment"}},
		{"rbac/v1", "Role", Type{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "Role"}},
		{"networking/v1beta1", "Ingress", Type{Group: "networking.k8s.io", Version: "v1beta1", Kind: "Ingress"}},
	}

	for _, tc := range testCases {
		t.Run(tc.apiVersion, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ParseType(tc.apiVersion, tc.kind)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestTypeOfWithoutTypeMeta(t *testing.T) {
	testCases := []struct {
		name string
		obj  client.Object
		want Type
	}{
		{name: "pod", obj: &corev1.Pod{}, want: Type{Group: CoreGroup, Version: "v1", Kind: "Pod"}},
		{name: "role", obj: &rbacv1.Role{}, want: Type{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "Role"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := TypeOf(tc.obj)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	_, ok := TypeOf(&corev1.ConfigMap{})
	assert.False(t, ok)
}

func TestTypesAreBijective(t *testing.T) {
	seen := map[Type]bool{}
	for _, typ := range Types() {
		if seen[typ] {
			t.Errorf("duplicate type %v", typ)
		}
		seen[typ] = true

		obj, ok := New(typ)
		require.True(t, ok)
		got, ok := TypeOf(obj)
		require.True(t, ok)
		assert.Equal(t, typ, got)
	}
	assert.Len(t, seen, 15)
}
