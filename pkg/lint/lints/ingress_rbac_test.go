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

	"github.com/stretchr/testify/assert"
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	"korrecte.dev/korrecte/pkg/core"
	"korrecte.dev/korrecte/pkg/core/k8sobjects"
	"korrecte.dev/korrecte/pkg/reporting"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const albIngressYAML = `
apiVersion: networking.k8s.io/v1beta1
kind: Ingress
metadata:
  name: web
  namespace: prod
  annotations:
    kubernetes.io/ingress.class: alb
spec:
  rules:
  - http:
      paths:
      - path: /
        backend:
          serviceName: web
          servicePort: 80
      - path: /api
        backend:
          serviceName: api
          servicePort: 80
`

func serviceOfType(name string, serviceType corev1.ServiceType) *corev1.Service {
	svc := k8sobjects.ServiceObject(core.Name(name), core.Namespace("prod"))
	svc.Spec.Type = serviceType
	return svc
}

func TestALBIngressInstance(t *testing.T) {
	testCases := []struct {
		name       string
		targetType string
		objs       []client.Object
		want       []reporting.Finding
	}{
		{
			name: "instance target with default ClusterIP service",
			objs: []client.Object{
				serviceOfType("web", ""),
				serviceOfType("api", corev1.ServiceTypeNodePort),
				serviceOfType("unrelated", corev1.ServiceTypeClusterIP),
			},
			want: []reporting.Finding{
				finding(albIngressInstanceSpec, "web", "prod", map[string]string{"service": "web"}),
			},
		},
		{
			name:       "explicit instance target",
			targetType: "instance",
			objs: []client.Object{
				serviceOfType("web", corev1.ServiceTypeLoadBalancer),
				serviceOfType("api", corev1.ServiceTypeClusterIP),
			},
			want: []reporting.Finding{
				finding(albIngressInstanceSpec, "web", "prod", map[string]string{"service": "api"}),
			},
		},
		{
			name:       "ip target",
			targetType: "ip",
			objs: []client.Object{
				serviceOfType("web", corev1.ServiceTypeClusterIP),
				serviceOfType("api", corev1.ServiceTypeNodePort),
			},
			want: []reporting.Finding{
				finding(albIngressInstanceSpec, "web", "prod", map[string]string{"service": "api"}),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ing := decode(t, albIngressYAML)
			if tc.targetType != "" {
				core.SetAnnotation(ing, albTargetTypeAnnotation, tc.targetType)
			}
			objs := append([]client.Object{ing}, tc.objs...)
			checkFindings(t, tc.want, run(t, albIngressInstanceSpec.Name, nil, objs...))
		})
	}
}

func TestALBIngressInstanceIgnoresOtherClasses(t *testing.T) {
	ing := k8sobjects.ExtensionsIngressObject(core.Name("nginx"), core.Annotation(ingressClassAnnotation, "nginx"))
	checkFindings(t, nil, run(t, albIngressInstanceSpec.Name, nil, ing, serviceOfType("web", "")))
}

func TestALBNamedSecurityGroups(t *testing.T) {
	withGroups := func(name, groups string) client.Object {
		return k8sobjects.IngressObject(core.Name(name), core.Annotation(albSecurityGroupsAnnotation, groups))
	}
	objs := []client.Object{
		withGroups("ids", "sg-123, web-sg ,sg-456"),
		withGroups("names", "web-sg,internal"),
		k8sobjects.ExtensionsIngressObject(core.Name("legacy"), core.Annotation(albSecurityGroupsAnnotation, "sg-789")),
		k8sobjects.IngressObject(core.Name("none")),
	}

	want := []reporting.Finding{
		finding(albNamedSecurityGroupsSpec, "ids", "", map[string]string{"invalid_security_groups": "sg-123,sg-456"}),
		finding(albNamedSecurityGroupsSpec, "legacy", "", map[string]string{"invalid_security_groups": "sg-789"}),
	}
	checkFindings(t, want, run(t, albNamedSecurityGroupsSpec.Name, nil, objs...))
}

func TestSimilarName(t *testing.T) {
	testCases := []struct {
		name       string
		vocabulary []string
		want       string
		wantOK     bool
	}{
		{name: "wstch", vocabulary: kubernetesVerbs, want: "watch", wantOK: true},
		{name: "watch", vocabulary: kubernetesVerbs},
		{name: "*", vocabulary: kubernetesVerbs},
		{name: "escalate", vocabulary: kubernetesVerbs},
		{name: "podss", vocabulary: kubernetesResources, want: "pods", wantOK: true},
		{name: "deploymnts", vocabulary: kubernetesResources, want: "deployments", wantOK: true},
		{name: "app", vocabulary: kubernetesGroups, want: "apps", wantOK: true},
		{name: "", vocabulary: kubernetesGroups},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := similarName(tc.name, tc.vocabulary)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoleSimilarNames(t *testing.T) {
	rules := []rbacv1.PolicyRule{
		{
			APIGroups: []string{""},
			Resources: []string{"pods", "secrest"},
			Verbs:     []string{"get", "wstch", "wstch"},
		},
	}
	objs := []client.Object{
		k8sobjects.RoleObject(rules, core.Name("reader"), core.Namespace("prod")),
		k8sobjects.ClusterRoleObject([]rbacv1.PolicyRule{{APIGroups: []string{"app"}, Resources: []string{"*"}, Verbs: []string{"*"}}}, core.Name("admin")),
	}

	want := []reporting.Finding{
		finding(roleSimilarNamesSpec, "reader", "prod", map[string]string{"incorrect_name": "wstch", "suggested_name": "watch"}),
		finding(roleSimilarNamesSpec, "reader", "prod", map[string]string{"incorrect_name": "secrest", "suggested_name": "secrets"}),
		finding(roleSimilarNamesSpec, "admin", "", map[string]string{"incorrect_name": "app", "suggested_name": "apps"}),
	}
	checkFindings(t, want, run(t, roleSimilarNamesSpec.Name, nil, objs...))
}
