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
	"reflect"

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
	"korrecte.dev/korrecte/pkg/kinds"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

type registration struct {
	gvk     schema.GroupVersionKind
	newFunc func() client.Object
}

// registrations is the closed set of object types korrecte can decode, in the
// order they are listed from a cluster.
var registrations = []registration{
	{kinds.Node(), func() client.Object { return &corev1.Node{} }},
	{kinds.Pod(), func() client.Object { return &corev1.Pod{} }},
	{kinds.Service(), func() client.Object { return &corev1.Service{} }},
	{kinds.DaemonSet(), func() client.Object { return &appsv1.DaemonSet{} }},
	{kinds.Deployment(), func() client.Object { return &appsv1.Deployment{} }},
	{kinds.ReplicaSet(), func() client.Object { return &appsv1.ReplicaSet{} }},
	{kinds.StatefulSet(), func() client.Object { return &appsv1.StatefulSet{} }},
	{kinds.PodDisruptionBudget(), func() client.Object { return &policyv1beta1.PodDisruptionBudget{} }},
	{kinds.HorizontalPodAutoscaler(), func() client.Object { return &autoscalingv1.HorizontalPodAutoscaler{} }},
	{kinds.HorizontalPodAutoscalerV2Beta1(), func() client.Object { return &autoscalingv2beta1.HorizontalPodAutoscaler{} }},
	{kinds.HorizontalPodAutoscalerV2Beta2(), func() client.Object { return &autoscalingv2beta2.HorizontalPodAutoscaler{} }},
	{kinds.Ingress(), func() client.Object { return &networkingv1beta1.Ingress{} }},
	{kinds.ExtensionsIngress(), func() client.Object { return &extensionsv1beta1.Ingress{} }},
	{kinds.ClusterRole(), func() client.Object { return &rbacv1.ClusterRole{} }},
	{kinds.Role(), func() client.Object { return &rbacv1.Role{} }},
}

var (
	byType   = map[Type]func() client.Object{}
	byGoType = map[reflect.Type]Type{}
	types    []Type
)

func init() {
	for _, r := range registrations {
		t := FromGVK(r.gvk)
		byType[t] = r.newFunc
		byGoType[reflect.TypeOf(r.newFunc())] = t
		types = append(types, t)
	}
}

// Types returns every supported Type in registration order.
func Types() []Type {
	return append([]Type(nil), types...)
}

// New returns an empty object of Type t with its TypeMeta populated, or false
// if t is not supported.
func New(t Type) (client.Object, bool) {
	newFunc, ok := byType[t]
	if !ok {
		return nil, false
	}
	obj := newFunc()
	obj.GetObjectKind().SetGroupVersionKind(t.GroupVersionKind())
	return obj, true
}

// TypeOf returns the Type of a decoded object. It does not rely on TypeMeta,
// which is empty for objects listed from the API server.
func TypeOf(obj client.Object) (Type, bool) {
	if obj == nil {
		return Type{}, false
	}
	t, ok := byGoType[reflect.TypeOf(obj)]
	return t, ok
}
