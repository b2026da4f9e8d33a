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

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/visitor"
)

var requiredLabelsSpec = reporting.Spec{Group: reporting.Audit, Name: "required_labels"}

// requiredLabels reports pods missing any of the configured label keys.
// Only pods are checked: workloads propagate their template labels.
type requiredLabels struct {
	lint.Base
	labels []string
}

var _ lint.Lint = &requiredLabels{}

func (l *requiredLabels) Spec() reporting.Spec {
	return requiredLabelsSpec
}

func (l *requiredLabels) CheckPod(pod *corev1.Pod, ctx *lint.Context) {
	var missing []string
	for _, label := range l.labels {
		if _, ok := pod.Labels[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) == 0 {
		return
	}
	ctx.Report(reporting.NewFinding(requiredLabelsSpec, &pod.ObjectMeta).
		With("missing_labels", strings.Join(missing, ",")))
}

var statefulSetNoGracePeriodSpec = reporting.Spec{Group: reporting.Configuration, Name: "statefulset_no_grace_period"}

// defaultGracePeriodSeconds is assumed when the template does not set one.
const defaultGracePeriodSeconds = 1

// statefulSetNoGracePeriod reports stateful sets whose pods are killed
// without a grace period, which breaks the at-most-one pod guarantee.
type statefulSetNoGracePeriod struct {
	lint.Base
}

var _ lint.Lint = &statefulSetNoGracePeriod{}

func (l *statefulSetNoGracePeriod) Spec() reporting.Spec {
	return statefulSetNoGracePeriodSpec
}

func (l *statefulSetNoGracePeriod) CheckStatefulSet(sts *appsv1.StatefulSet, ctx *lint.Context) {
	spec, _, _, ok := visitor.PodSpec(sts)
	if !ok {
		return
	}
	gracePeriod := int64(defaultGracePeriodSeconds)
	if spec.TerminationGracePeriodSeconds != nil {
		gracePeriod = *spec.TerminationGracePeriodSeconds
	}
	if gracePeriod == 0 {
		ctx.Report(reporting.NewFinding(statefulSetNoGracePeriodSpec, &sts.ObjectMeta))
	}
}
