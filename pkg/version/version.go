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

// Package version reports the version of korrecte and of the linted cluster.
package version

import (
	"fmt"
	"io"
	"text/tabwriter"

	"k8s.io/client-go/discovery"
	"korrecte.dev/korrecte/pkg/repository"
)

// VERSION is the semver version of this application.
var VERSION = "UNKNOWN"

// entry is one row of the output.
type entry struct {
	component string
	version   string
	err       error
}

// Print writes the version of korrecte and, when server is non-nil, of the
// cluster it reaches to w.
func Print(server discovery.ServerVersionInterface, w io.Writer) error {
	es := []entry{{component: "<korrecte CLI>", version: VERSION}}
	if server != nil {
		es = append(es, clusterEntry(server))
	}
	return tabulate(es, w)
}

func clusterEntry(server discovery.ServerVersionInterface) entry {
	e := entry{component: "<cluster>"}
	info, err := server.ServerVersion()
	if err != nil {
		e.err = err
		return e
	}
	v, err := repository.FromServerVersion(info)
	if err != nil {
		e.err = err
		return e
	}
	e.version = v.String()
	return e
}

// tabulate prints the entries in tabular form.
func tabulate(es []entry, out io.Writer) error {
	format := "%s\t%s\n"
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintf(w, format, "COMPONENT", "VERSION"); err != nil {
		return err
	}
	for _, e := range es {
		v := e.version
		if e.err != nil {
			v = fmt.Sprintf("<error: %v>", e.err)
		}
		if _, err := fmt.Fprintf(w, format, e.component, v); err != nil {
			return err
		}
	}
	return w.Flush()
}
