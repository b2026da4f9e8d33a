// Copyright 2022 Google LLC
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

package kinds

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
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Node returns the canonical Node GroupVersionKind.
func Node() schema.GroupVersionKind {
	return corev1.SchemeGroupVersion.WithKind("Node")
}

// Pod returns the canonical Pod GroupVersionKind.
func Pod() schema.GroupVersionKind {
	return corev1.SchemeGroupVersion.WithKind("Pod")
}

// Service returns the canonical Service GroupVersionKind.
func Service() schema.GroupVersionKind {
	return corev1.SchemeGroupVersion.WithKind("Service")
}

// DaemonSet returns the canonical DaemonSet GroupVersionKind.
func DaemonSet() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("DaemonSet")
}

// Deployment returns the canonical Deployment GroupVersionKind.
func Deployment() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("Deployment")
}

// ReplicaSet returns the canonical ReplicaSet GroupVersionKind.
func ReplicaSet() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("ReplicaSet")
}

// StatefulSet returns the canonical StatefulSet GroupVersionKind.
func StatefulSet() schema.GroupVersionKind {
	return appsv1.SchemeGroupVersion.WithKind("StatefulSet")
}

// PodDisruptionBudget returns the v1beta1 PodDisruptionBudget GroupVersionKind.
func PodDisruptionBudget() schema.GroupVersionKind {
	return policyv1beta1.SchemeGroupVersion.WithKind("PodDisruptionBudget")
}

// HorizontalPodAutoscaler returns the autoscaling/v1 HorizontalPodAutoscaler
// GroupVersionKind.
func HorizontalPodAutoscaler() schema.GroupVersionKind {
	return autoscalingv1.SchemeGroupVersion.WithKind("HorizontalPodAutoscaler")
}

// HorizontalPodAutoscalerV2Beta1 returns the autoscaling/v2beta1
// HorizontalPodAutoscaler GroupVersionKind.
func HorizontalPodAutoscalerV2Beta1() schema.GroupVersionKind {
	return autoscalingv2beta1.SchemeGroupVersion.WithKind("HorizontalPodAutoscaler")
}

// HorizontalPodAutoscalerV2Beta2 returns the autoscaling/v2beta2
// HorizontalPodAutoscaler GroupVersionKind.
func HorizontalPodAutoscalerV2Beta2() schema.GroupVersionKind {
	return autoscalingv2beta2.SchemeGroupVersion.WithKind("HorizontalPodAutoscaler")
}

// Ingress returns the networking.k8s.io/v1beta1 Ingress GroupVersionKind.
func Ingress() schema.GroupVersionKind {
	return networkingv1beta1.SchemeGroupVersion.WithKind("Ingress")
}

// ExtensionsIngress returns the deprecated extensions/v1beta1 Ingress
// GroupVersionKind.
func ExtensionsIngress() schema.GroupVersionKind {
	return extensionsv1beta1.SchemeGroupVersion.WithKind("Ingress")
}

// ClusterRole returns the canonical ClusterRole GroupVersionKind.
func ClusterRole() schema.GroupVersionKind {
	return rbacv1.SchemeGroupVersion.WithKind("ClusterRole")
}

// Role returns the canonical Role GroupVersionKind.
func Role() schema.GroupVersionKind {
	return rbacv1.SchemeGroupVersion.WithKind("Role")
}
