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

// Package errorcodes implements the korrecte errors command.
package errorcodes

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"korrecte.dev/korrecte/cmd/korrecte/util"
	"korrecte.dev/korrecte/pkg/status"
)

var idFlag string

// Cmd is the Cobra object representing the korrecte errors command.
var Cmd = &cobra.Command{
	Use:   "errors",
	Short: "List every error code and an example error",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		return printErrors(cmd.OutOrStdout(), idFlag)
	},
}

func init() {
	Cmd.Flags().StringVar(&idFlag, "id", "", "if set, only print the error with the passed code, such as KOR1004")
}

// examples returns a sample error for every registered code.
func examples() map[string]status.Error {
	deployments := schema.GroupResource{Group: "apps", Resource: "deployments"}
	return map[string]status.Error{
		status.UnknownTypeErrorCode: status.UnknownTypeError("argoproj.io", "v1alpha1", "Rollout"),
		status.ObjectParseErrorCode: status.ObjectParseError("apps/v1", "Deployment",
			errors.New("json: cannot unmarshal string into Go struct field DeploymentSpec.spec.replicas of type int32")),
		status.InvalidConfigErrorCode: status.InvalidConfigError("korrecte.toml",
			errors.New("toml: line 2: expected '.' or ']' to end table name")),
		status.UnknownLintErrorCode:   status.UnknownLintError("overlaping_probes", "overlapping_probes"),
		status.InvalidOptionErrorCode: status.InvalidOptionError("unknown source %q, must be one of api, file", "git"),
		status.PathErrorCode:          status.PathWrapError(errors.New("no such file or directory"), "manifests/web.yaml"),
		status.APIServerErrorCode: status.APIServerErrorf(errors.New("connection refused"),
			"failed to list %s", "apps/v1, Kind=Deployment"),
		status.InsufficientPermissionErrorCode: status.APIServerErrorf(
			apierrors.NewForbidden(deployments, "", errors.New("missing list verb")),
			"failed to list %s", "apps/v1, Kind=Deployment"),
		status.UndocumentedErrorCode: status.Append(nil, errors.New("unexpected EOF")).Errors()[0],
	}
}

// printErrors prints the example of every registered code, or only of id if
// set. Fails if a registered code has no example.
func printErrors(out io.Writer, id string) error {
	id = strings.TrimPrefix(id, "KOR")
	samples := examples()
	found := false
	for _, code := range status.CodeRegistry() {
		sample, ok := samples[code]
		if !ok {
			return errors.Errorf("missing example for error code KOR%s", code)
		}
		if id != "" && code != id {
			continue
		}
		found = true
		util.MustFprintf(out, "=== KOR%s ===\n%s\n\n", code, sample.Error())
	}
	if id != "" && !found {
		return status.InvalidOptionError("unknown error code %q", "KOR"+id)
	}
	return nil
}
