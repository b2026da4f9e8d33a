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

// Package lint implements the korrecte lint command.
package lint

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"korrecte.dev/korrecte/cmd/korrecte/flags"
	"korrecte.dev/korrecte/pkg/executor"
	"korrecte.dev/korrecte/pkg/view"
)

// Flags holds all the flags specific to the lint command
type Flags struct {
	// Format is the output format of the findings.
	Format string
	// Only restricts the pass to these lints.
	Only []string
	// FailOnFindings makes the command fail when anything is reported.
	FailOnFindings bool
}

// NewFlags creates a new instance of Flags with default values
func NewFlags() *Flags {
	return &Flags{Format: view.Text}
}

// AddFlags adds all lint-specific flags to the command
func (lf *Flags) AddFlags(cmd *cobra.Command) {
	flags.AddRepository(cmd)

	cmd.Flags().StringVar(&lf.Format, "format", lf.Format,
		fmt.Sprintf("Output format. Accepts %s.", strings.Join(view.Formats(), ", ")))
	cmd.Flags().StringSliceVar(&lf.Only, "only", lf.Only,
		"Comma-separated list of lints to run. Defaults to every lint.")
	cmd.Flags().BoolVar(&lf.FailOnFindings, "fail-on-findings", lf.FailOnFindings,
		"If true, exit with a non-zero code when any finding is reported.")
}

var lintFlags = NewFlags()

func init() {
	lintFlags.AddFlags(Cmd)
}

// Cmd is the Cobra object representing the korrecte lint command.
var Cmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint the objects of a cluster or of manifest files",
	Long: `Lint the objects of a cluster or of manifest files.
Runs every lint, or those given with --only, and prints one finding per line.`,
	Example: `  korrecte lint
  korrecte lint --source=file --path=manifests/
  korrecte lint --only=overlapping_probes,pod_requirements --format=json`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		params := ExecParams{
			Executor:       flags.ExecutorParams(),
			Format:         lintFlags.Format,
			FailOnFindings: lintFlags.FailOnFindings,
		}
		params.Executor.Only = lintFlags.Only
		return ExecuteLint(cmd.Context(), cmd.OutOrStdout(), params)
	},
}

// ExecParams contains all parameters needed to execute the lint command
type ExecParams struct {
	Executor       executor.Params
	Format         string
	FailOnFindings bool
}

// ExecuteLint runs a lint pass and renders its findings to out.
func ExecuteLint(ctx context.Context, out io.Writer, params ExecParams) error {
	if !validFormat(params.Format) {
		return errors.Errorf("unknown output format %q, must be one of %s",
			params.Format, strings.Join(view.Formats(), ", "))
	}

	findings, err := executor.Execute(ctx, params.Executor)
	if err != nil {
		return err
	}
	if err := view.Render(out, params.Format, findings); err != nil {
		return err
	}
	if params.FailOnFindings && len(findings) > 0 {
		return errors.Errorf("%d findings reported", len(findings))
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range view.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
