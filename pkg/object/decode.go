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

// Package object is the typed model of the Kubernetes objects korrecte lints.
//
// A decoded object is a client.Object whose concrete type is one of the
// registered k8s.io/api types. Decoding any other (group, version, kind) is an
// error, never a fallback.
package object

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"korrecte.dev/korrecte/pkg/status"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"
)

// Decode decodes a single YAML or JSON manifest body into the object type
// registered for apiVersion and kind. Fields the type does not declare are
// dropped; only mistyped fields fail.
//
// Returns a status.UnknownTypeError if the type is not supported, and a
// status.ObjectParseError if body does not decode into it.
func Decode(body []byte, apiVersion, kind string) (client.Object, status.Error) {
	t := ParseType(apiVersion, kind)
	obj, ok := New(t)
	if !ok {
		return nil, status.UnknownTypeError(t.Group, t.Version, t.Kind)
	}
	if err := yaml.Unmarshal(body, obj); err != nil {
		return nil, status.ObjectParseError(apiVersion, kind, err)
	}
	// Aliased groups are stored under their canonical name.
	obj.GetObjectKind().SetGroupVersionKind(t.GroupVersionKind())
	return obj, nil
}

// Metadata returns the metadata of obj, or nil if it has none.
func Metadata(obj client.Object) *metav1.ObjectMeta {
	if obj == nil {
		return nil
	}
	accessor, ok := obj.(metav1.ObjectMetaAccessor)
	if !ok {
		return nil
	}
	meta, _ := accessor.GetObjectMeta().(*metav1.ObjectMeta)
	return meta
}

// MatchesType returns true if obj is of the type named by apiVersion and kind,
// after normalizing group aliases.
func MatchesType(obj client.Object, apiVersion, kind string) bool {
	t, ok := TypeOf(obj)
	return ok && t == ParseType(apiVersion, kind)
}
