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
	"slices"

	"github.com/agnivade/levenshtein"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
)

// Reference vocabularies of the names a role rule may use.
var (
	kubernetesVerbs = []string{
		"create",
		"delete",
		"deletecollection",
		"get",
		"list",
		"patch",
		"update",
		"watch",
	}

	kubernetesResources = []string{
		"bindings",
		"componentstatuses",
		"configmaps",
		"endpoints",
		"events",
		"limitranges",
		"namespaces",
		"nodes",
		"persistentvolumeclaims",
		"persistentvolumes",
		"pods",
		"podtemplates",
		"replicationcontrollers",
		"resourcequotas",
		"secrets",
		"serviceaccounts",
		"services",
		"mutatingwebhookconfigurations",
		"validatingwebhookconfigurations",
		"customresourcedefinitions",
		"apiservices",
		"controllerrevisions",
		"daemonsets",
		"deployments",
		"replicasets",
		"statefulsets",
		"tokenreviews",
		"localsubjectaccessreviews",
		"selfsubjectaccessreviews",
		"selfsubjectrulesreviews",
		"subjectaccessreviews",
		"horizontalpodautoscalers",
		"cronjobs",
		"jobs",
		"certificatesigningrequests",
		"leases",
		"ingresses",
		"networkpolicies",
		"podsecuritypolicies",
		"runtimeclasses",
		"poddisruptionbudgets",
		"clusterrolebindings",
		"clusterroles",
		"rolebindings",
		"roles",
		"priorityclasses",
		"csidrivers",
		"csinodes",
		"storageclasses",
		"volumeattachments",
	}

	kubernetesGroups = []string{
		"",
		"admissionregistration.k8s.io",
		"apiextensions.k8s.io",
		"apiregistration.k8s.io",
		"apps",
		"authentication.k8s.io",
		"authorization.k8s.io",
		"autoscaling",
		"batch",
		"certificates.k8s.io",
		"coordination.k8s.io",
		"events.k8s.io",
		"extensions",
		"networking.k8s.io",
		"node.k8s.io",
		"policy",
		"rbac.authorization.k8s.io",
		"scheduling.k8s.io",
		"storage.k8s.io",
	}
)

// Edit distances considered a typo. Anything further is a different name.
const (
	minTypoDistance = 1
	maxTypoDistance = 2
)

var roleSimilarNamesSpec = reporting.Spec{Group: reporting.Audit, Name: "role_similar_names"}

// roleSimilarNames reports verbs, resources and API groups of role rules that
// are not known names but are close to one. The rule silently grants nothing
// for the misspelled name.
type roleSimilarNames struct {
	lint.Base
}

var _ lint.Lint = &roleSimilarNames{}

func (l *roleSimilarNames) Spec() reporting.Spec {
	return roleSimilarNamesSpec
}

func (l *roleSimilarNames) CheckClusterRole(role *rbacv1.ClusterRole, ctx *lint.Context) {
	l.checkRules(role.Rules, &role.ObjectMeta, ctx)
}

func (l *roleSimilarNames) CheckRole(role *rbacv1.Role, ctx *lint.Context) {
	l.checkRules(role.Rules, &role.ObjectMeta, ctx)
}

func (l *roleSimilarNames) checkRules(rules []rbacv1.PolicyRule, meta *metav1.ObjectMeta, ctx *lint.Context) {
	for _, rule := range rules {
		reportSimilarNames(rule.Verbs, kubernetesVerbs, meta, ctx)
		reportSimilarNames(rule.Resources, kubernetesResources, meta, ctx)
		reportSimilarNames(rule.APIGroups, kubernetesGroups, meta, ctx)
	}
}

func reportSimilarNames(names, vocabulary []string, meta *metav1.ObjectMeta, ctx *lint.Context) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		if suggestion, ok := similarName(name, vocabulary); ok {
			ctx.Report(reporting.NewFinding(roleSimilarNamesSpec, meta).
				With("incorrect_name", name).
				With("suggested_name", suggestion))
		}
	}
}

// similarName returns the vocabulary entry closest to name when name looks
// like a typo of it. Ties go to the entry listed first.
func similarName(name string, vocabulary []string) (string, bool) {
	if name == rbacv1.VerbAll || slices.Contains(vocabulary, name) {
		return "", false
	}

	best, bestDistance := "", maxTypoDistance+1
	for _, candidate := range vocabulary {
		d := levenshtein.ComputeDistance(name, candidate)
		if d >= minTypoDistance && d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, bestDistance <= maxTypoDistance
}
