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

// Package k8sobjects builds initialized objects of every linted type for
// tests.
package k8sobjects

import (
	appsv1 "k8s.io/api/apps/v1"
	autoscalingv1 "k8s.io/api/autoscaling/v1"
	autoscalingv2beta1 "k8s.io/api/autoscaling/v2beta1"
	autoscalingv2beta2 "k8s.io/api/autoscaling/v2beta2"
	corev1 "k8s.io/api/core/v1"
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	networkingv1beta1 "k8s.io/api/networking/v1beta1"
	policyv1beta1 "k8s.io/api/policy/v1beta1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"korrecte.dev/korrecte/pkg/core"
	"korrecte.dev/korrecte/pkg/kinds"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// defaultMutations are the standard Meta set on all built objects. All can be
// overwritten with mutators.
var defaultMutations = []core.MetaMutator{
	core.Name("default-name"),
}

func defaultMutate(obj client.Object) {
	for _, m := range defaultMutations {
		m(obj)
	}
}

func mutate(obj client.Object, opts ...core.MetaMutator) {
	for _, m := range opts {
		m(obj)
	}
}

// ToTypeMeta returns the TypeMeta of gvk.
func ToTypeMeta(gvk schema.GroupVersionKind) metav1.TypeMeta {
	return metav1.TypeMeta{
		APIVersion: gvk.GroupVersion().String(),
		Kind:       gvk.Kind,
	}
}

// NodeObject returns an initialized Node.
func NodeObject(opts ...core.MetaMutator) *corev1.Node {
	obj := &corev1.Node{TypeMeta: ToTypeMeta(kinds.Node())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// PodObject returns an initialized Pod running containers.
func PodObject(containers []corev1.Container, opts ...core.MetaMutator) *corev1.Pod {
	obj := &corev1.Pod{
		TypeMeta: ToTypeMeta(kinds.Pod()),
		Spec:     corev1.PodSpec{Containers: containers},
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// ServiceObject returns a default-initialized Service with the passed opts
// applied.
func ServiceObject(opts ...core.MetaMutator) *corev1.Service {
	obj := &corev1.Service{TypeMeta: ToTypeMeta(kinds.Service())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// PodTemplate returns a pod template with the given labels and containers.
func PodTemplate(labels map[string]string, containers ...corev1.Container) corev1.PodTemplateSpec {
	return corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{Labels: labels},
		Spec:       corev1.PodSpec{Containers: containers},
	}
}

// DaemonSetObject returns an initialized DaemonSet.
func DaemonSetObject(template corev1.PodTemplateSpec, opts ...core.MetaMutator) *appsv1.DaemonSet {
	obj := &appsv1.DaemonSet{
		TypeMeta: ToTypeMeta(kinds.DaemonSet()),
		Spec:     appsv1.DaemonSetSpec{Template: template},
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// DeploymentObject returns an initialized Deployment.
func DeploymentObject(template corev1.PodTemplateSpec, opts ...core.MetaMutator) *appsv1.Deployment {
	obj := &appsv1.Deployment{
		TypeMeta: ToTypeMeta(kinds.Deployment()),
		Spec:     appsv1.DeploymentSpec{Template: template},
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// ReplicaSetObject returns an initialized ReplicaSet.
func ReplicaSetObject(template corev1.PodTemplateSpec, opts ...core.MetaMutator) *appsv1.ReplicaSet {
	obj := &appsv1.ReplicaSet{
		TypeMeta: ToTypeMeta(kinds.ReplicaSet()),
		Spec:     appsv1.ReplicaSetSpec{Template: template},
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// StatefulSetObject returns an initialized StatefulSet.
func StatefulSetObject(template corev1.PodTemplateSpec, opts ...core.MetaMutator) *appsv1.StatefulSet {
	obj := &appsv1.StatefulSet{
		TypeMeta: ToTypeMeta(kinds.StatefulSet()),
		Spec:     appsv1.StatefulSetSpec{Template: template},
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// PodDisruptionBudgetObject returns an initialized PodDisruptionBudget.
func PodDisruptionBudgetObject(opts ...core.MetaMutator) *policyv1beta1.PodDisruptionBudget {
	obj := &policyv1beta1.PodDisruptionBudget{TypeMeta: ToTypeMeta(kinds.PodDisruptionBudget())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// HorizontalPodAutoscalerObject returns an initialized autoscaling/v1
// HorizontalPodAutoscaler.
func HorizontalPodAutoscalerObject(opts ...core.MetaMutator) *autoscalingv1.HorizontalPodAutoscaler {
	obj := &autoscalingv1.HorizontalPodAutoscaler{TypeMeta: ToTypeMeta(kinds.HorizontalPodAutoscaler())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// HorizontalPodAutoscalerV2Beta1Object returns an initialized
// autoscaling/v2beta1 HorizontalPodAutoscaler.
func HorizontalPodAutoscalerV2Beta1Object(opts ...core.MetaMutator) *autoscalingv2beta1.HorizontalPodAutoscaler {
	obj := &autoscalingv2beta1.HorizontalPodAutoscaler{TypeMeta: ToTypeMeta(kinds.HorizontalPodAutoscalerV2Beta1())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// HorizontalPodAutoscalerV2Beta2Object returns an initialized
// autoscaling/v2beta2 HorizontalPodAutoscaler.
func HorizontalPodAutoscalerV2Beta2Object(opts ...core.MetaMutator) *autoscalingv2beta2.HorizontalPodAutoscaler {
	obj := &autoscalingv2beta2.HorizontalPodAutoscaler{TypeMeta: ToTypeMeta(kinds.HorizontalPodAutoscalerV2Beta2())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// IngressObject returns an initialized networking.k8s.io/v1beta1 Ingress.
func IngressObject(opts ...core.MetaMutator) *networkingv1beta1.Ingress {
	obj := &networkingv1beta1.Ingress{TypeMeta: ToTypeMeta(kinds.Ingress())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// ExtensionsIngressObject returns an initialized extensions/v1beta1 Ingress.
func ExtensionsIngressObject(opts ...core.MetaMutator) *extensionsv1beta1.Ingress {
	obj := &extensionsv1beta1.Ingress{TypeMeta: ToTypeMeta(kinds.ExtensionsIngress())}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// ClusterRoleObject returns an rbacv1 ClusterRole.
func ClusterRoleObject(rules []rbacv1.PolicyRule, opts ...core.MetaMutator) *rbacv1.ClusterRole {
	obj := &rbacv1.ClusterRole{
		TypeMeta: ToTypeMeta(kinds.ClusterRole()),
		Rules:    rules,
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}

// RoleObject returns an rbacv1 Role.
func RoleObject(rules []rbacv1.PolicyRule, opts ...core.MetaMutator) *rbacv1.Role {
	obj := &rbacv1.Role{
		TypeMeta: ToTypeMeta(kinds.Role()),
		Rules:    rules,
	}
	defaultMutate(obj)
	mutate(obj, opts...)

	return obj
}
