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

package errorcodes

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"korrecte.dev/korrecte/pkg/status"
	"korrecte.dev/korrecte/pkg/testing/fake"
)

func TestExamplesCoverRegistry(t *testing.T) {
	samples := examples()
	for _, code := range status.CodeRegistry() {
		sample, ok := samples[code]
		if !assert.Truef(t, ok, "no example for KOR%s", code) {
			continue
		}
		assert.Equal(t, code, sample.Code())
	}
	assert.Len(t, samples, len(status.CodeRegistry()))
}

func TestPrintErrors(t *testing.T) {
	testCases := []struct {
		name       string
		id         string
		wantHeader []string
		wantErr    error
	}{
		{
			name: "every code",
			wantHeader: []string{
				"=== KOR1001 ===", "=== KOR1002 ===", "=== KOR1003 ===", "=== KOR1004 ===", "=== KOR1005 ===",
				"=== KOR2001 ===", "=== KOR2002 ===", "=== KOR2013 ===", "=== KOR9999 ===",
			},
		},
		{
			name:       "single code with prefix",
			id:         "KOR1004",
			wantHeader: []string{"=== KOR1004 ==="},
		},
		{
			name:       "single code without prefix",
			id:         "2013",
			wantHeader: []string{"=== KOR2013 ==="},
		},
		{
			name:    "unknown code",
			id:      "KOR4242",
			wantErr: fake.Error(status.InvalidOptionErrorCode),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printErrors(&out, tc.id)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got printErrors() error %v, want %v", err, tc.wantErr)
				}
				return
			}
			require.NoError(t, err)

			var headers []string
			for _, line := range strings.Split(out.String(), "\n") {
				if strings.HasPrefix(line, "=== KOR") {
					headers = append(headers, line)
				}
			}
			assert.Equal(t, tc.wantHeader, headers)
		})
	}
}

func TestPrintErrorsInsufficientPermission(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printErrors(&out, "KOR2013"))
	assert.True(t, strings.HasPrefix(out.String(), "=== KOR2013 ===\nKOR2013: "), out.String())
	assert.Contains(t, out.String(), "Insufficient permission")
}
