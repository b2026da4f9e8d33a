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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var errFooRaw = errors.New("raw foo")
var errBarRaw = errors.New("raw bar")

func TestAppend(t *testing.T) {
	testCases := []struct {
		name     string
		m        MultiError
		err      error
		errs     []error
		wantLen  int
		wantNil  bool
		wantCode []string
	}{
		{
			name:    "nothing to append",
			wantNil: true,
		},
		{
			name:     "raw error becomes undocumented",
			err:      errFooRaw,
			wantLen:  1,
			wantCode: []string{UndocumentedErrorCode},
		},
		{
			name:     "status errors keep their codes",
			err:      UnknownTypeError("apps", "v1", "Foo"),
			errs:     []error{InvalidConfigError("korrecte.toml", errBarRaw)},
			wantLen:  2,
			wantCode: []string{UnknownTypeErrorCode, InvalidConfigErrorCode},
		},
		{
			name:     "append to existing",
			m:        Append(nil, UnknownTypeError("", "v1", "Foo")),
			err:      ObjectParseError("v1", "Pod", errFooRaw),
			wantLen:  2,
			wantCode: []string{UnknownTypeErrorCode, ObjectParseErrorCode},
		},
		{
			name:     "combined errors are flattened",
			err:      multierr.Combine(APIServerErrorf(errFooRaw, "list pods"), errBarRaw),
			wantLen:  2,
			wantCode: []string{APIServerErrorCode, UndocumentedErrorCode},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Append(tc.m, tc.err, tc.errs...)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			if len(got.Errors()) != tc.wantLen {
				t.Fatalf("got %d errors, want %d", len(got.Errors()), tc.wantLen)
			}
			var codes []string
			for _, e := range got.Errors() {
				codes = append(codes, e.Code())
			}
			if diff := cmp.Diff(tc.wantCode, codes); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestFormatMultiLine(t *testing.T) {
	err := Append(nil, undocumented(errFooRaw), undocumented(errBarRaw), undocumented(errFooRaw))
	want := "2 error(s)\n\n[1] KOR9999: raw bar\n\n[2] KOR9999: raw foo\n"
	if diff := cmp.Diff(want, FormatMultiLine(err)); diff != "" {
		t.Error(diff)
	}
}

func TestErrorIs(t *testing.T) {
	err := InFile(UnknownTypeError("extensions", "v1", "Foo"), "manifests/foo.yaml")
	if !errors.Is(err, UnknownTypeError("", "", "")) {
		t.Errorf("got errors.Is(%v, UnknownTypeError) = false, want true", err)
	}
	if errors.Is(err, ObjectParseError("v1", "Pod", errFooRaw)) {
		t.Errorf("got errors.Is(%v, ObjectParseError) = true, want false", err)
	}
}

func TestBody(t *testing.T) {
	testCases := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "message",
			err:  UnknownTypeError("apps", "v1", "Foo"),
			want: `KOR1001: unsupported object type group="apps" version="v1" kind="Foo"`,
		},
		{
			name: "wrapped",
			err:  APIServerErrorf(errFooRaw, "failed to list %s", "pods"),
			want: "KOR2002: failed to list pods: APIServer error: raw foo",
		},
		{
			name: "path",
			err:  PathWrapError(errBarRaw, "a/b.yaml"),
			want: "KOR2001: raw bar\n\npath: a/b.yaml",
		},
		{
			name: "suggestion",
			err:  UnknownLintError("overlaping_probes", "overlapping_probes"),
			want: `KOR1004: unknown lint "overlaping_probes", did you mean "overlapping_probes"?`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.err.Error()); diff != "" {
				t.Error(diff)
			}
		})
	}
}
