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

// Package lint defines the interface implemented by every lint and the
// evaluator that runs lints over a repository.
//
// A lint receives each object through the hook for its type. Lints embed Base
// and override only the hooks for the types they inspect.
package lint

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
	"korrecte.dev/korrecte/pkg/reporting"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Lint is a single check run against every object of a repository.
type Lint interface {
	// Spec identifies the lint in findings.
	Spec() reporting.Spec

	CheckNode(node *corev1.Node, ctx *Context)
	CheckPod(pod *corev1.Pod, ctx *Context)
	CheckService(svc *corev1.Service, ctx *Context)
	CheckDaemonSet(ds *appsv1.DaemonSet, ctx *Context)
	CheckDeployment(deploy *appsv1.Deployment, ctx *Context)
	CheckReplicaSet(rs *appsv1.ReplicaSet, ctx *Context)
	CheckStatefulSet(sts *appsv1.StatefulSet, ctx *Context)
	CheckPodDisruptionBudget(pdb *policyv1beta1.PodDisruptionBudget, ctx *Context)
	CheckHorizontalPodAutoscalerV1(hpa *autoscalingv1.HorizontalPodAutoscaler, ctx *Context)
	CheckHorizontalPodAutoscalerV2Beta1(hpa *autoscalingv2beta1.HorizontalPodAutoscaler, ctx *Context)
	CheckHorizontalPodAutoscalerV2Beta2(hpa *autoscalingv2beta2.HorizontalPodAutoscaler, ctx *Context)
	CheckIngress(ing *networkingv1beta1.Ingress, ctx *Context)
	CheckExtensionsIngress(ing *extensionsv1beta1.Ingress, ctx *Context)
	CheckClusterRole(role *rbacv1.ClusterRole, ctx *Context)
	CheckRole(role *rbacv1.Role, ctx *Context)
}

// Base implements every hook of Lint as a no-op.
type Base struct{}

// CheckNode implements Lint.
func (Base) CheckNode(*corev1.Node, *Context) {}

// CheckPod implements Lint.
func (Base) CheckPod(*corev1.Pod, *Context) {}

// CheckService implements Lint.
func (Base) CheckService(*corev1.Service, *Context) {}

// CheckDaemonSet implements Lint.
func (Base) CheckDaemonSet(*appsv1.DaemonSet, *Context) {}

// CheckDeployment implements Lint.
func (Base) CheckDeployment(*appsv1.Deployment, *Context) {}

// CheckReplicaSet implements Lint.
func (Base) CheckReplicaSet(*appsv1.ReplicaSet, *Context) {}

// CheckStatefulSet implements Lint.
func (Base) CheckStatefulSet(*appsv1.StatefulSet, *Context) {}

// CheckPodDisruptionBudget implements Lint.
func (Base) CheckPodDisruptionBudget(*policyv1beta1.PodDisruptionBudget, *Context) {}

// CheckHorizontalPodAutoscalerV1 implements Lint.
func (Base) CheckHorizontalPodAutoscalerV1(*autoscalingv1.HorizontalPodAutoscaler, *Context) {}

// CheckHorizontalPodAutoscalerV2Beta1 implements Lint.
func (Base) CheckHorizontalPodAutoscalerV2Beta1(*autoscalingv2beta1.HorizontalPodAutoscaler, *Context) {
}

// CheckHorizontalPodAutoscalerV2Beta2 implements Lint.
func (Base) CheckHorizontalPodAutoscalerV2Beta2(*autoscalingv2beta2.HorizontalPodAutoscaler, *Context) {
}

// CheckIngress implements Lint.
func (Base) CheckIngress(*networkingv1beta1.Ingress, *Context) {}

// CheckExtensionsIngress implements Lint.
func (Base) CheckExtensionsIngress(*extensionsv1beta1.Ingress, *Context) {}

// CheckClusterRole implements Lint.
func (Base) CheckClusterRole(*rbacv1.ClusterRole, *Context) {}

// CheckRole implements Lint.
func (Base) CheckRole(*rbacv1.Role, *Context) {}

// Dispatch calls the hook of l that matches the type of obj. Objects of
// unsupported types are ignored.
func Dispatch(l Lint, obj client.Object, ctx *Context) {
	switch o := obj.(type) {
	case *corev1.Node:
		l.CheckNode(o, ctx)
	case *corev1.Pod:
		l.CheckPod(o, ctx)
	case *corev1.Service:
		l.CheckService(o, ctx)
	case *appsv1.DaemonSet:
		l.CheckDaemonSet(o, ctx)
	case *appsv1.Deployment:
		l.CheckDeployment(o, ctx)
	case *appsv1.ReplicaSet:
		l.CheckReplicaSet(o, ctx)
	case *appsv1.StatefulSet:
		l.CheckStatefulSet(o, ctx)
	case *policyv1beta1.PodDisruptionBudget:
		l.CheckPodDisruptionBudget(o, ctx)
	case *autoscalingv1.HorizontalPodAutoscaler:
		l.CheckHorizontalPodAutoscalerV1(o, ctx)
	case *autoscalingv2beta1.HorizontalPodAutoscaler:
		l.CheckHorizontalPodAutoscalerV2Beta1(o, ctx)
	case *autoscalingv2beta2.HorizontalPodAutoscaler:
		l.CheckHorizontalPodAutoscalerV2Beta2(o, ctx)
	case *networkingv1beta1.Ingress:
		l.CheckIngress(o, ctx)
	case *extensionsv1beta1.Ingress:
		l.CheckExtensionsIngress(o, ctx)
	case *rbacv1.ClusterRole:
		l.CheckClusterRole(o, ctx)
	case *rbacv1.Role:
		l.CheckRole(o, ctx)
	}
}
