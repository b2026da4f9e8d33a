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
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

var podRequirementsSpec = reporting.Spec{Group: reporting.Security, Name: "pod_requirements"}

// checkPodRequirements reports every container missing a cpu or memory limit
// or request, one finding per missing value.
func checkPodRequirements(spec *corev1.PodSpec, _, owner *metav1.ObjectMeta, ctx *lint.Context) {
	for _, c := range spec.Containers {
		missing := func(key string) {
			ctx.Report(reporting.NewFinding(podRequirementsSpec, owner).
				With(key, "").
				With("container", c.Name))
		}

		if _, ok := c.Resources.Limits[corev1.ResourceCPU]; !ok {
			missing("missing_cpu_limit")
		}
		if _, ok := c.Resources.Limits[corev1.ResourceMemory]; !ok {
			missing("missing_mem_limit")
		}
		if _, ok := c.Resources.Requests[corev1.ResourceCPU]; !ok {
			missing("missing_cpu_requirement")
		}
		if _, ok := c.Resources.Requests[corev1.ResourceMemory]; !ok {
			missing("missing_mem_requirement")
		}
	}
}
