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

// Package reporting holds the findings produced by a lint pass.
package reporting

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Group classifies a lint.
type Group string

const (
	// Audit lints flag objects that deserve a second look.
	Audit Group = "Audit"
	// Configuration lints flag objects that are likely to misbehave.
	Configuration Group = "Configuration"
	// Security lints flag objects that weaken the cluster's security.
	Security Group = "Security"
)

// Spec identifies a lint.
type Spec struct {
	Group Group  `json:"group"`
	Name  string `json:"name"`
}

// Finding is a single defect reported by a lint against one object.
type Finding struct {
	Spec      Spec              `json:"spec"`
	Name      string            `json:"name"`
	Namespace string            `json:"namespace,omitempty"`
	Metadata  map[string]string `json:"lint_metadata,omitempty"`
}

// NewFinding returns a Finding of spec against the object described by meta.
func NewFinding(spec Spec, meta *metav1.ObjectMeta) Finding {
	f := Finding{Spec: spec}
	if meta != nil {
		f.Name = meta.Name
		f.Namespace = meta.Namespace
	}
	return f
}

// With returns a copy of f with key set to the string form of value in its
// metadata.
func (f Finding) With(key string, value interface{}) Finding {
	metadata := make(map[string]string, len(f.Metadata)+1)
	for k, v := range f.Metadata {
		metadata[k] = v
	}
	metadata[key] = fmt.Sprint(value)
	f.Metadata = metadata
	return f
}

// Lint returns the name of the lint that produced f.
func (f Finding) Lint() string {
	return f.Spec.Name
}
