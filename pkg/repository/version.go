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

package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/version"
)

// Version is a Kubernetes minor release.
type Version struct {
	Major uint16
	Minor uint16
}

// ParseVersion parses versions such as "1.14", "v1.16.3" or "v1.21.5-gke.1302".
func ParseVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid Kubernetes version %q", s)
	}
	if v.Major() > math.MaxUint16 || v.Minor() > math.MaxUint16 {
		return nil, errors.Errorf("invalid Kubernetes version %q: out of range", s)
	}
	return &Version{Major: uint16(v.Major()), Minor: uint16(v.Minor())}, nil
}

// FromServerVersion returns the Version reported by discovery. Providers
// often decorate the minor version, as in "14+", so GitVersion is preferred.
func FromServerVersion(info *version.Info) (*Version, error) {
	if info == nil {
		return nil, errors.New("missing server version")
	}
	if v, err := ParseVersion(info.GitVersion); err == nil {
		return v, nil
	}
	major, err := strconv.ParseUint(info.Major, 10, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server major version %q", info.Major)
	}
	minor, err := strconv.ParseUint(strings.TrimSuffix(info.Minor, "+"), 10, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server minor version %q", info.Minor)
	}
	return &Version{Major: uint16(major), Minor: uint16(minor)}, nil
}

// AtLeast returns true if v is the same as or newer than other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
