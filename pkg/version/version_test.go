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

package version

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/version"
	fakediscovery "k8s.io/client-go/discovery/fake"
	k8stesting "k8s.io/client-go/testing"
)

func TestPrint(t *testing.T) {
	VERSION = "v1.2.3"
	t.Cleanup(func() { VERSION = "UNKNOWN" })

	testCases := []struct {
		name   string
		server *fakediscovery.FakeDiscovery
		want   string
	}{
		{
			name: "client only",
			want: "COMPONENT        VERSION\n" +
				"<korrecte CLI>   v1.2.3\n",
		},
		{
			name: "with cluster",
			server: &fakediscovery.FakeDiscovery{
				Fake:               &k8stesting.Fake{},
				FakedServerVersion: &version.Info{Major: "1", Minor: "14+", GitVersion: "v1.14.10-eks-1"},
			},
			want: "COMPONENT        VERSION\n" +
				"<korrecte CLI>   v1.2.3\n" +
				"<cluster>        1.14\n",
		},
		{
			name: "unknown cluster version",
			server: &fakediscovery.FakeDiscovery{
				Fake:               &k8stesting.Fake{},
				FakedServerVersion: &version.Info{Major: "one", GitVersion: "unknown"},
			},
			want: "COMPONENT        VERSION\n" +
				"<korrecte CLI>   v1.2.3\n" +
				"<cluster>        <error: invalid server major version \"one\": strconv.ParseUint: parsing \"one\": invalid syntax>\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if tc.server == nil {
				require.NoError(t, Print(nil, &out))
			} else {
				require.NoError(t, Print(tc.server, &out))
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Error(diff)
			}
		})
	}
}
