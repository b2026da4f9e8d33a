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

package lint

import (
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/object"
)

// Evaluate runs every lint against every object of ctx.Repository. Lints are
// run one at a time, each over the whole repository in order.
//
// Objects in an ignored namespace are skipped. When allowed namespaces are
// configured, objects outside of them are skipped too. Cluster-scoped objects
// have the empty namespace.
func Evaluate(ctx *Context, lints []Lint) {
	ignored := toSet(ctx.Config.Korrecte.IgnoredNamespaces)
	allowed := toSet(ctx.Config.Korrecte.AllowedNamespaces)

	for _, l := range lints {
		klog.V(3).Infof("Running lint %s", l.Spec().Name)
		for _, obj := range ctx.Objects() {
			var namespace string
			if meta := object.Metadata(obj); meta != nil {
				namespace = meta.Namespace
			}
			if _, skip := ignored[namespace]; skip {
				continue
			}
			if _, ok := allowed[namespace]; len(allowed) > 0 && !ok {
				continue
			}
			Dispatch(l, obj, ctx)
		}
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
