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
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/visitor"
)

// selects returns a matcher for pod templates carrying every key and value of
// selector. An empty selector matches every pod template.
func selects(selector map[string]string) func(*corev1.PodSpec, *metav1.ObjectMeta) bool {
	return func(_ *corev1.PodSpec, podMeta *metav1.ObjectMeta) bool {
		for k, v := range selector {
			if got, ok := podMeta.Labels[k]; !ok || got != v {
				return false
			}
		}
		return true
	}
}

var serviceWithoutMatchingLabelsSpec = reporting.Spec{Group: reporting.Configuration, Name: "service_without_matching_labels"}

// serviceWithoutMatchingLabels reports services whose selector matches no pod
// template of the repository.
type serviceWithoutMatchingLabels struct {
	lint.Base
}

var _ lint.Lint = &serviceWithoutMatchingLabels{}

func (l *serviceWithoutMatchingLabels) Spec() reporting.Spec {
	return serviceWithoutMatchingLabelsSpec
}

func (l *serviceWithoutMatchingLabels) CheckService(svc *corev1.Service, ctx *lint.Context) {
	if _, _, found := visitor.FirstMatch(ctx.Objects(), selects(svc.Spec.Selector)); !found {
		ctx.Report(reporting.NewFinding(serviceWithoutMatchingLabelsSpec, &svc.ObjectMeta))
	}
}

var serviceTargetPortSpec = reporting.Spec{Group: reporting.Configuration, Name: "service_target_port"}

// serviceTargetPort reports numeric target ports of a service that are not
// declared as a container port by the first pod template it selects.
type serviceTargetPort struct {
	lint.Base
}

var _ lint.Lint = &serviceTargetPort{}

func (l *serviceTargetPort) Spec() reporting.Spec {
	return serviceTargetPortSpec
}

func (l *serviceTargetPort) CheckService(svc *corev1.Service, ctx *lint.Context) {
	ports := numericTargetPorts(svc)
	if len(ports) == 0 {
		return
	}
	spec, _, found := visitor.FirstMatch(ctx.Objects(), selects(svc.Spec.Selector))
	if !found {
		// Reported by service_without_matching_labels.
		return
	}

	declared := make(map[int32]bool)
	for _, c := range spec.Containers {
		for _, p := range c.Ports {
			declared[p.ContainerPort] = true
		}
	}
	for _, port := range ports {
		if !declared[port] {
			ctx.Report(reporting.NewFinding(serviceTargetPortSpec, &svc.ObjectMeta).
				With("port", port))
		}
	}
}

// numericTargetPorts returns the target ports of svc given as numbers. An
// unset target port is not numeric.
func numericTargetPorts(svc *corev1.Service) []int32 {
	var result []int32
	for _, p := range svc.Spec.Ports {
		if p.TargetPort.Type == intstr.Int && p.TargetPort.IntVal != 0 {
			result = append(result, p.TargetPort.IntVal)
		}
	}
	return result
}
