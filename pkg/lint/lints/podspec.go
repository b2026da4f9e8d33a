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
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/visitor"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// podSpecCheck inspects one pod template. owner is the object findings are
// reported against.
type podSpecCheck func(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta, ctx *lint.Context)

// podSpecLint is a lint that only looks at pod templates. Every object that
// declares one is routed to check.
type podSpecLint struct {
	lint.Base
	spec  reporting.Spec
	check podSpecCheck
}

var _ lint.Lint = podSpecLint{}

func newPodSpecLint(spec reporting.Spec, check podSpecCheck) lint.Lint {
	return podSpecLint{spec: spec, check: check}
}

// Spec implements lint.Lint.
func (h podSpecLint) Spec() reporting.Spec {
	return h.spec
}

func (h podSpecLint) visit(obj client.Object, ctx *lint.Context) {
	visitor.Visit(obj, visitor.PodSpecVisitorFunc(func(spec *corev1.PodSpec, podMeta, owner *metav1.ObjectMeta) {
		h.check(spec, podMeta, owner, ctx)
	}))
}

// CheckPod implements lint.Lint.
func (h podSpecLint) CheckPod(pod *corev1.Pod, ctx *lint.Context) {
	h.visit(pod, ctx)
}

// CheckDaemonSet implements lint.Lint.
func (h podSpecLint) CheckDaemonSet(ds *appsv1.DaemonSet, ctx *lint.Context) {
	h.visit(ds, ctx)
}

// CheckDeployment implements lint.Lint.
func (h podSpecLint) CheckDeployment(deploy *appsv1.Deployment, ctx *lint.Context) {
	h.visit(deploy, ctx)
}

// CheckReplicaSet implements lint.Lint.
func (h podSpecLint) CheckReplicaSet(rs *appsv1.ReplicaSet, ctx *lint.Context) {
	h.visit(rs, ctx)
}

// CheckStatefulSet implements lint.Lint.
func (h podSpecLint) CheckStatefulSet(sts *appsv1.StatefulSet, ctx *lint.Context) {
	h.visit(sts, ctx)
}
