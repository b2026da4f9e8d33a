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
	autoscalingv1 "k8s.io/api/autoscaling/v1"
	autoscalingv2beta1 "k8s.io/api/autoscaling/v2beta1"
	autoscalingv2beta2 "k8s.io/api/autoscaling/v2beta2"
	corev1 "k8s.io/api/core/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/object"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/visitor"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var hpaNoRequestSpec = reporting.Spec{Group: reporting.Configuration, Name: "hpa_no_request"}

// hpaNoRequest reports autoscalers that scale on the utilization of a
// resource some container of their target does not request. Utilization is
// relative to the request, so the autoscaler cannot compute it.
type hpaNoRequest struct {
	lint.Base
}

var _ lint.Lint = &hpaNoRequest{}

func (l *hpaNoRequest) Spec() reporting.Spec {
	return hpaNoRequestSpec
}

func (l *hpaNoRequest) CheckHorizontalPodAutoscalerV1(hpa *autoscalingv1.HorizontalPodAutoscaler, ctx *lint.Context) {
	if hpa.Spec.TargetCPUUtilizationPercentage == nil {
		return
	}
	ref := hpa.Spec.ScaleTargetRef
	missing, ok := missingRequests(ctx, ref.APIVersion, ref.Kind, ref.Name)
	if ok && missing[corev1.ResourceCPU] {
		ctx.Report(reporting.NewFinding(hpaNoRequestSpec, &hpa.ObjectMeta).
			With("resource", corev1.ResourceCPU))
	}
}

func (l *hpaNoRequest) CheckHorizontalPodAutoscalerV2Beta1(hpa *autoscalingv2beta1.HorizontalPodAutoscaler, ctx *lint.Context) {
	ref := hpa.Spec.ScaleTargetRef
	missing, ok := missingRequests(ctx, ref.APIVersion, ref.Kind, ref.Name)
	if !ok {
		return
	}
	for _, m := range hpa.Spec.Metrics {
		if m.Type != autoscalingv2beta1.ResourceMetricSourceType {
			break
		}
		if m.Resource != nil && missing[m.Resource.Name] {
			ctx.Report(reporting.NewFinding(hpaNoRequestSpec, &hpa.ObjectMeta).
				With("resource", m.Resource.Name))
		}
	}
}

func (l *hpaNoRequest) CheckHorizontalPodAutoscalerV2Beta2(hpa *autoscalingv2beta2.HorizontalPodAutoscaler, ctx *lint.Context) {
	ref := hpa.Spec.ScaleTargetRef
	missing, ok := missingRequests(ctx, ref.APIVersion, ref.Kind, ref.Name)
	if !ok {
		return
	}
	for _, m := range hpa.Spec.Metrics {
		if m.Type != autoscalingv2beta2.ResourceMetricSourceType {
			break
		}
		if m.Resource != nil && missing[m.Resource.Name] {
			ctx.Report(reporting.NewFinding(hpaNoRequestSpec, &hpa.ObjectMeta).
				With("resource", m.Resource.Name))
		}
	}
}

// missingRequests resolves the scale target and returns, for cpu and memory,
// whether any of its containers lacks a request. Returns false if the target
// is not in the repository or has no pod template.
func missingRequests(ctx *lint.Context, apiVersion, kind, name string) (map[corev1.ResourceName]bool, bool) {
	target := findTarget(ctx.Objects(), apiVersion, kind, name)
	if target == nil {
		return nil, false
	}
	spec, _, _, ok := visitor.PodSpec(target)
	if !ok {
		return nil, false
	}

	missing := map[corev1.ResourceName]bool{}
	for _, c := range spec.Containers {
		for _, resource := range []corev1.ResourceName{corev1.ResourceCPU, corev1.ResourceMemory} {
			if _, found := c.Resources.Requests[resource]; !found {
				missing[resource] = true
			}
		}
	}
	return missing, true
}

// findTarget returns the first object of the given type and name, in any
// namespace.
func findTarget(objs []client.Object, apiVersion, kind, name string) client.Object {
	if apiVersion == "" {
		return nil
	}
	for _, obj := range objs {
		if obj.GetName() == name && object.MatchesType(obj, apiVersion, kind) {
			return obj
		}
	}
	return nil
}
