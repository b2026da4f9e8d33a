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

package object

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// CoreGroup is the name used for the legacy API group, which has an empty
// group on the wire.
const CoreGroup = "core"

// groupAliases maps historical short group names to their fully qualified
// names.
var groupAliases = map[string]string{
	"networking": "networking.k8s.io",
	"rbac":       "rbac.authorization.k8s.io",
}

// Type identifies one supported object variant.
type Type struct {
	Group   string
	Version string
	Kind    string
}

// ParseType builds the Type named by an apiVersion and kind as they appear in
// a manifest. apiVersion is either "group/version" or a bare "version", in
// which case the group is CoreGroup.
func ParseType(apiVersion, kind string) Type {
	group, version := CoreGroup, apiVersion
	if i := strings.Index(apiVersion, "/"); i >= 0 {
		group, version = apiVersion[:i], apiVersion[i+1:]
	}
	if alias, ok := groupAliases[group]; ok {
		group = alias
	}
	return Type{Group: group, Version: version, Kind: kind}
}

// FromGVK returns the Type of a GroupVersionKind.
func FromGVK(gvk schema.GroupVersionKind) Type {
	if gvk.Group == "" {
		return Type{Group: CoreGroup, Version: gvk.Version, Kind: gvk.Kind}
	}
	return ParseType(gvk.GroupVersion().String(), gvk.Kind)
}

// GroupVersionKind returns the GroupVersionKind used on the wire for t.
func (t Type) GroupVersionKind() schema.GroupVersionKind {
	group := t.Group
	if group == CoreGroup {
		group = ""
	}
	return schema.GroupVersionKind{Group: group, Version: t.Version, Kind: t.Kind}
}

// APIVersion returns the apiVersion field value for t.
func (t Type) APIVersion() string {
	return t.GroupVersionKind().GroupVersion().String()
}

func (t Type) String() string {
	return fmt.Sprintf("%s/%s, Kind=%s", t.Group, t.Version, t.Kind)
}
