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

// Package repository loads the set of objects a lint pass runs over, either
// from manifest files or from a live cluster.
package repository

import (
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Repository is an immutable corpus of decoded objects.
type Repository interface {
	// Objects returns every object in a stable order.
	Objects() []client.Object
	// Version returns the version of the cluster the objects were read from,
	// or nil if unknown.
	Version() *Version
}

// Snapshot is a fully materialized Repository.
type Snapshot struct {
	objects []client.Object
	version *Version
}

var _ Repository = &Snapshot{}

// New returns a Repository over objects. version may be nil.
func New(objects []client.Object, version *Version) *Snapshot {
	return &Snapshot{
		objects: objects,
		version: version,
	}
}

// Objects implements Repository.
func (s *Snapshot) Objects() []client.Object {
	return s.objects
}

// Version implements Repository.
func (s *Snapshot) Version() *Version {
	return s.version
}
