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
	extensionsv1beta1 "k8s.io/api/extensions/v1beta1"
	"korrecte.dev/korrecte/pkg/kinds"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/object"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/repository"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var deprecationsSpec = reporting.Spec{Group: reporting.Configuration, Name: "deprecations"}

// deprecatedSince maps object types to the first cluster version on which
// they are deprecated.
var deprecatedSince = map[object.Type]repository.Version{
	object.FromGVK(kinds.ExtensionsIngress()): {Major: 1, Minor: 14},
}

// deprecations reports objects whose type is deprecated on the linted
// cluster. It never reports when the cluster version is unknown.
type deprecations struct {
	lint.Base
}

var _ lint.Lint = &deprecations{}

func (l *deprecations) Spec() reporting.Spec {
	return deprecationsSpec
}

func (l *deprecations) CheckExtensionsIngress(ing *extensionsv1beta1.Ingress, ctx *lint.Context) {
	l.check(ing, ctx)
}

func (l *deprecations) check(obj client.Object, ctx *lint.Context) {
	if ctx.Version == nil {
		return
	}
	t, ok := object.TypeOf(obj)
	if !ok {
		return
	}
	since, deprecated := deprecatedSince[t]
	if !deprecated || !ctx.Version.AtLeast(since) {
		return
	}
	ctx.Report(reporting.NewFinding(deprecationsSpec, object.Metadata(obj)).
		With("deprecated_since", since.String()))
}
