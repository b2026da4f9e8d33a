// Copyright 2022 Google LLC
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

package status

import (
	"path/filepath"
	"sort"
	"strings"
)

// PathErrorCode is the error code for a manifest file that could not be read.
const PathErrorCode = "2001"

var pathError = NewErrorBuilder(PathErrorCode)

// PathError defines a status error associated with one or more manifest files.
type PathError interface {
	Error
	Paths() []string
}

// PathWrapError wraps an error reading or walking the given paths.
func PathWrapError(err error, paths ...string) Error {
	if err == nil {
		return nil
	}
	return pathError.Wrap(err).BuildWithPaths(paths...)
}

// InFile annotates an already built Error with the manifest file and document
// it was produced for.
func InFile(err Error, path string) Error {
	if err == nil {
		return nil
	}
	return pathErrorImpl{
		underlying: err,
		paths:      []string{path},
	}
}

type pathErrorImpl struct {
	underlying Error
	paths      []string
}

var _ PathError = pathErrorImpl{}

// Error implements error.
func (p pathErrorImpl) Error() string {
	return format(p)
}

// Is implements Error.
func (p pathErrorImpl) Is(target error) bool {
	return p.underlying.Is(target)
}

// Code implements Error.
func (p pathErrorImpl) Code() string {
	return p.underlying.Code()
}

// Body implements Error.
func (p pathErrorImpl) Body() string {
	return formatBody(p.underlying.Body(), "\n\n", formatPaths(p.paths))
}

// Errors implements MultiError.
func (p pathErrorImpl) Errors() []Error {
	return []Error{p}
}

// Paths implements PathError.
func (p pathErrorImpl) Paths() []string {
	return p.paths
}

// Cause implements causer.
func (p pathErrorImpl) Cause() error {
	return p.underlying.Cause()
}

func formatPaths(paths []string) string {
	pathStrs := make([]string, len(paths))
	for i, path := range paths {
		pathStrs[i] = "path: " + filepath.FromSlash(path)
	}
	// Ensure deterministic path printing order.
	sort.Strings(pathStrs)
	return strings.Join(pathStrs, "\n")
}
