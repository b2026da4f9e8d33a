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

// Package lints implements the korrecte lints command.
package lints

import (
	"io"

	"github.com/spf13/cobra"
	"korrecte.dev/korrecte/cmd/korrecte/util"
	"korrecte.dev/korrecte/pkg/lint/lints"
)

// Cmd is the Cobra object representing the korrecte lints command.
var Cmd = &cobra.Command{
	Use:   "lints",
	Short: "List every lint korrecte runs",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		return tabulate(cmd.OutOrStdout())
	},
}

// tabulate prints the catalog in the order lints run.
func tabulate(out io.Writer) error {
	format := "%s\t%s\t%s\t%s\n"
	w := util.NewWriter(out)
	util.MustFprintf(w, format, "NAME", "TITLE", "GROUP", "DESCRIPTION")
	for e := lints.Catalog.Front(); e != nil; e = e.Next() {
		util.MustFprintf(w, format, e.Key, lints.Title(e.Key), e.Value.Group, e.Value.Description)
	}
	return w.Flush()
}
