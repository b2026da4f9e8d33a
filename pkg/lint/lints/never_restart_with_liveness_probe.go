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
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

var neverRestartWithLivenessProbeSpec = reporting.Spec{Group: reporting.Configuration, Name: "never_restart_with_liveness_probe"}

// checkNeverRestartWithLivenessProbe reports pod templates with a Never
// restart policy and a liveness probe on any container. A failed probe kills
// the container and nothing restarts it.
func checkNeverRestartWithLivenessProbe(spec *corev1.PodSpec, _, owner *metav1.ObjectMeta, ctx *lint.Context) {
	policy := spec.RestartPolicy
	if policy == "" {
		policy = corev1.RestartPolicyAlways
	}
	if !strings.EqualFold(string(policy), string(corev1.RestartPolicyNever)) {
		return
	}
	for _, c := range spec.Containers {
		if c.LivenessProbe != nil {
			ctx.Report(reporting.NewFinding(neverRestartWithLivenessProbeSpec, owner))
			return
		}
	}
}
