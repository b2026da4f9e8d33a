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

// Package lints contains every lint korrecte runs, and the catalog that
// names them.
package lints

import (
	"github.com/agnivade/levenshtein"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ettle/strcase"
	"github.com/sahilm/fuzzy"
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/status"
)

// Entry describes a lint of the catalog.
type Entry struct {
	Group       reporting.Group
	Description string
	new         func(cfg config.Config) lint.Lint
}

// Catalog holds every lint by name, in the order they run.
var Catalog = orderedmap.NewOrderedMap[string, Entry]()

func register(spec reporting.Spec, description string, newFunc func(cfg config.Config) lint.Lint) {
	if _, found := Catalog.Get(spec.Name); found {
		panic("duplicate lint " + spec.Name)
	}
	Catalog.Set(spec.Name, Entry{Group: spec.Group, Description: description, new: newFunc})
}

func init() {
	register(requiredLabelsSpec,
		"Pods are missing one of the labels every pod must carry",
		func(cfg config.Config) lint.Lint { return &requiredLabels{labels: cfg.RequiredLabels.Labels} })
	register(overlappingProbesSpec,
		"The liveness probe of a container may run before its readiness probe can succeed",
		func(config.Config) lint.Lint { return newPodSpecLint(overlappingProbesSpec, checkOverlappingProbes) })
	register(neverRestartWithLivenessProbeSpec,
		"A pod that never restarts has a liveness probe, so a failed probe stops the container for good",
		func(config.Config) lint.Lint {
			return newPodSpecLint(neverRestartWithLivenessProbeSpec, checkNeverRestartWithLivenessProbe)
		})
	register(serviceWithoutMatchingLabelsSpec,
		"No pod template matches the selector of the service",
		func(config.Config) lint.Lint { return &serviceWithoutMatchingLabels{} })
	register(serviceTargetPortSpec,
		"A numeric target port of the service is not declared by the pods it selects",
		func(config.Config) lint.Lint { return &serviceTargetPort{} })
	register(environmentPasswordsSpec,
		"A container sets a password, token or key as a literal environment variable",
		func(cfg config.Config) lint.Lint {
			return newPodSpecLint(environmentPasswordsSpec, checkEnvironmentPasswords(cfg.EnvironmentPasswords.SuspiciousKeys))
		})
	register(pdbMinReplicasSpec,
		"A pod disruption budget allows as many unavailable pods as the workload has replicas",
		func(config.Config) lint.Lint { return &pdbMinReplicas{} })
	register(statefulSetNoGracePeriodSpec,
		"A stateful set terminates its pods without a grace period",
		func(config.Config) lint.Lint { return &statefulSetNoGracePeriod{} })
	register(podRequirementsSpec,
		"A container has no cpu or memory limits or requests",
		func(config.Config) lint.Lint { return newPodSpecLint(podRequirementsSpec, checkPodRequirements) })
	register(albIngressInstanceSpec,
		"An ALB ingress routes to a service whose type does not match the ingress target type",
		func(config.Config) lint.Lint { return &albIngressInstance{} })
	register(albNamedSecurityGroupsSpec,
		"An ALB ingress refers to security groups by id instead of by name",
		func(config.Config) lint.Lint { return &albNamedSecurityGroups{} })
	register(roleSimilarNamesSpec,
		"A role rule uses a verb, resource or API group that looks like a typo",
		func(config.Config) lint.Lint { return &roleSimilarNames{} })
	register(hpaNoRequestSpec,
		"A horizontal pod autoscaler scales on a resource its target does not request",
		func(config.Config) lint.Lint { return &hpaNoRequest{} })
	register(deprecationsSpec,
		"The object uses an API version deprecated on the cluster",
		func(config.Config) lint.Lint { return &deprecations{} })
}

// Names returns the name of every lint in catalog order.
func Names() []string {
	names := make([]string, 0, Catalog.Len())
	for e := Catalog.Front(); e != nil; e = e.Next() {
		names = append(names, e.Key)
	}
	return names
}

// All returns every lint of the catalog configured with cfg.
func All(cfg config.Config) []lint.Lint {
	result := make([]lint.Lint, 0, Catalog.Len())
	for e := Catalog.Front(); e != nil; e = e.Next() {
		result = append(result, e.Value.new(cfg))
	}
	return result
}

// Select returns the lints named in only, in catalog order. An empty only
// selects every lint. Unknown names are errors carrying the closest known
// name.
func Select(cfg config.Config, only []string) ([]lint.Lint, status.MultiError) {
	if len(only) == 0 {
		return All(cfg), nil
	}

	selected := make(map[string]bool, len(only))
	var errs status.MultiError
	for _, name := range only {
		if _, found := Catalog.Get(name); !found {
			errs = status.Append(errs, status.UnknownLintError(name, Suggest(name)))
			continue
		}
		selected[name] = true
	}
	if errs != nil {
		return nil, errs
	}

	var result []lint.Lint
	for e := Catalog.Front(); e != nil; e = e.Next() {
		if selected[e.Key] {
			result = append(result, e.Value.new(cfg))
		}
	}
	return result, nil
}

// maxSuggestionDistance is the largest edit distance of a suggested name.
const maxSuggestionDistance = 3

// Suggest returns the lint name closest to name, or "" if none is close.
// Abbreviations are matched first, then misspellings.
func Suggest(name string) string {
	names := Names()
	// Matches are sorted best first.
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return matches[0].Str
	}

	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range names {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}

// Title returns the human readable title of a lint name, such as
// "Overlapping Probes" for overlapping_probes.
func Title(name string) string {
	return strcase.ToCase(name, strcase.TitleCase, ' ')
}
