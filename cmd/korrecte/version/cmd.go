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

// Package version implements the korrecte version command.
package version

import (
	"github.com/spf13/cobra"
	"k8s.io/client-go/discovery"
	"korrecte.dev/korrecte/cmd/korrecte/flags"
	"korrecte.dev/korrecte/pkg/client/restconfig"
	pkgversion "korrecte.dev/korrecte/pkg/version"
)

var withCluster bool

func init() {
	flags.AddClientTimeout(Cmd)
	Cmd.Flags().BoolVar(&withCluster, "cluster", false,
		"If true, also print the version of the cluster korrecte would lint.")
}

// Cmd is the Cobra object representing the korrecte version command.
var Cmd = &cobra.Command{
	Use:     "version",
	Short:   "Prints the version of this CLI",
	Example: `  korrecte version --cluster`,
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		if !withCluster {
			return pkgversion.Print(nil, cmd.OutOrStdout())
		}
		cfg, err := restconfig.NewRestConfig(flags.ClientTimeout)
		if err != nil {
			return err
		}
		client, err := discovery.NewDiscoveryClientForConfig(cfg)
		if err != nil {
			return err
		}
		return pkgversion.Print(client, cmd.OutOrStdout())
	},
}
