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

// Package visitor walks the pod templates embedded in workload objects.
package visitor

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// PodSpecVisitor is called once per pod template.
//
// podMeta is the metadata of the pod template and owner is the metadata of
// the object that declares it. For a Pod both are the Pod's own metadata.
type PodSpecVisitor interface {
	VisitPodSpec(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta)
}

// PodSpecVisitorFunc adapts a function to a PodSpecVisitor.
type PodSpecVisitorFunc func(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta)

// VisitPodSpec implements PodSpecVisitor.
func (f PodSpecVisitorFunc) VisitPodSpec(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta) {
	f(spec, podMeta, owner)
}

// PodSpec returns the pod spec declared by obj along with the pod and owner
// metadata. Returns false for objects that declare no pod template, and for
// workloads whose template declares no pod spec.
func PodSpec(obj client.Object) (spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta, ok bool) {
	switch o := obj.(type) {
	case *corev1.Pod:
		return &o.Spec, &o.ObjectMeta, &o.ObjectMeta, true
	case *appsv1.Deployment:
		return fromTemplate(&o.Spec.Template, &o.ObjectMeta)
	case *appsv1.DaemonSet:
		return fromTemplate(&o.Spec.Template, &o.ObjectMeta)
	case *appsv1.ReplicaSet:
		return fromTemplate(&o.Spec.Template, &o.ObjectMeta)
	case *appsv1.StatefulSet:
		return fromTemplate(&o.Spec.Template, &o.ObjectMeta)
	default:
		return nil, nil, nil, false
	}
}

func fromTemplate(template *corev1.PodTemplateSpec, owner *metav1.ObjectMeta) (*corev1.PodSpec, *metav1.ObjectMeta, *metav1.ObjectMeta, bool) {
	if equality.Semantic.DeepEqual(template.Spec, corev1.PodSpec{}) {
		return nil, nil, nil, false
	}
	return &template.Spec, &template.ObjectMeta, owner, true
}

// Visit calls v with the pod template of obj, if it has one.
func Visit(obj client.Object, v PodSpecVisitor) {
	if spec, podMeta, owner, ok := PodSpec(obj); ok {
		v.VisitPodSpec(spec, podMeta, owner)
	}
}

// VisitAll calls v with every pod template in objs, in order.
func VisitAll(objs []client.Object, v PodSpecVisitor) {
	for _, obj := range objs {
		Visit(obj, v)
	}
}

// FirstMatch returns the first pod template in objs for which match returns
// true.
func FirstMatch(objs []client.Object, match func(spec *corev1.PodSpec, podMeta *metav1.ObjectMeta) bool) (*corev1.PodSpec, *metav1.ObjectMeta, bool) {
	for _, obj := range objs {
		spec, podMeta, _, ok := PodSpec(obj)
		if ok && match(spec, podMeta) {
			return spec, podMeta, true
		}
	}
	return nil, nil, false
}
