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
	"fmt"
	"math"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

var overlappingProbesSpec = reporting.Spec{Group: reporting.Configuration, Name: "overlapping_probes"}

// Probe defaults applied by the kubelet, except for the thresholds which are
// taken as 0 when unset.
const (
	defaultPeriodSeconds  = 10
	defaultTimeoutSeconds = 1
)

// checkOverlappingProbes reports containers whose liveness probe may start
// before every readiness attempt has had the chance to run.
func checkOverlappingProbes(spec *corev1.PodSpec, _, owner *metav1.ObjectMeta, ctx *lint.Context) {
	for _, c := range spec.Containers {
		if c.ReadinessProbe == nil || c.LivenessProbe == nil {
			continue
		}
		readiness := probeWindow(c.ReadinessProbe)
		liveness := probeWindow(c.LivenessProbe)
		if readiness.end > liveness.start {
			ctx.Report(reporting.NewFinding(overlappingProbesSpec, owner).
				With("container", c.Name).
				With("readiness_max_delay", formatSeconds(readiness.end)).
				With("liveness_start", formatSeconds(liveness.start)))
		}
	}
}

// window is the span of time, in seconds since container start, during
// which a probe may be executed.
type window struct {
	start uint64
	end   uint64
}

func probeWindow(probe *corev1.Probe) window {
	start := nonNegative(probe.InitialDelaySeconds, 0)
	attempts := saturatingAdd(nonNegative(probe.FailureThreshold, 0), nonNegative(probe.SuccessThreshold, 0))
	perAttempt := nonNegative(probe.PeriodSeconds, defaultPeriodSeconds) + nonNegative(probe.TimeoutSeconds, defaultTimeoutSeconds)
	return window{
		start: start,
		end:   saturatingAdd(start, saturatingMul(attempts, perAttempt)),
	}
}

// nonNegative returns v, or def when v is unset. Probe fields are not
// pointers, so an explicit 0 reads as unset. Negative values count as 0.
func nonNegative(v int32, def uint64) uint64 {
	switch {
	case v == 0:
		return def
	case v < 0:
		return 0
	default:
		return uint64(v)
	}
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func saturatingMul(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}

func formatSeconds(s uint64) string {
	return fmt.Sprintf("%ds", s)
}
