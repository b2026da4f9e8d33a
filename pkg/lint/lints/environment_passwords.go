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

var environmentPasswordsSpec = reporting.Spec{Group: reporting.Security, Name: "environment_passwords"}

// checkEnvironmentPasswords returns a check reporting environment variables
// whose name contains one of suspiciousKeys, case insensitively, and whose
// value is written in the manifest instead of injected from a secret.
func checkEnvironmentPasswords(suspiciousKeys []string) podSpecCheck {
	keys := make([]string, len(suspiciousKeys))
	for i, k := range suspiciousKeys {
		keys[i] = strings.ToUpper(k)
	}

	return func(spec *corev1.PodSpec, _, owner *metav1.ObjectMeta, ctx *lint.Context) {
		for _, c := range spec.Containers {
			for _, env := range c.Env {
				if isInjected(env) || !containsAny(strings.ToUpper(env.Name), keys) {
					continue
				}
				ctx.Report(reporting.NewFinding(environmentPasswordsSpec, owner).
					With("container", c.Name).
					With("environment_var", env.Name))
			}
		}
	}
}

func isInjected(env corev1.EnvVar) bool {
	return env.Value == "" && env.ValueFrom != nil
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
