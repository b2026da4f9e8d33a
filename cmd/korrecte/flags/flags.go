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

// Package flags holds the flags shared by korrecte subcommands.
package flags

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/executor"
	"korrecte.dev/korrecte/pkg/repository"
)

const (
	// sourceFlag is the flag to choose where objects are read from.
	sourceFlag = "source"

	// pathFlag is the flag to set the manifests read with --source=file.
	pathFlag = "path"

	// configFlag is the flag to set the config file.
	configFlag = "config"

	// contextFlag is the flag name for KubeContext below.
	contextFlag = "context"

	// DefaultClusterClientTimeout specifies the timeout for connecting to the
	// cluster.
	DefaultClusterClientTimeout = 15 * time.Second
)

var (
	// Source is where objects are read from: "api" or "file".
	Source string

	// Path is the file or directory of manifests.
	Path string

	// ConfigPath is the TOML config file.
	ConfigPath string

	// KubeContext is the kubeconfig context of the linted cluster.
	KubeContext string

	// ClientTimeout is a flag value to specify how long to wait before timeout of client connection.
	ClientTimeout time.Duration
)

// AddSource adds the --source flag.
func AddSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Source, sourceFlag, repository.SourceAPI,
		fmt.Sprintf("Where objects are read from. Accepts '%s' and '%s'.", repository.SourceAPI, repository.SourceFile))
}

// AddPath adds the --path flag.
func AddPath(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Path, pathFlag, "",
		fmt.Sprintf("Manifest file or directory to lint with --%s=%s.", sourceFlag, repository.SourceFile))
}

// AddConfig adds the --config flag.
func AddConfig(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ConfigPath, configFlag, config.DefaultPath,
		"Path to the korrecte config file. Defaults are used if it does not exist.")
}

// AddContext adds the --context flag.
func AddContext(cmd *cobra.Command) {
	cmd.Flags().StringVar(&KubeContext, contextFlag, "",
		"Kubeconfig context of the cluster to lint. Defaults to the in-cluster config, then the current context.")
}

// AddClientTimeout adds the --timeout flag.
func AddClientTimeout(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&ClientTimeout, "timeout", DefaultClusterClientTimeout,
		"Timeout for connecting to the cluster")
}

// AddRepository adds every flag that selects the objects of a lint pass.
func AddRepository(cmd *cobra.Command) {
	AddSource(cmd)
	AddPath(cmd)
	AddConfig(cmd)
	AddContext(cmd)
	AddClientTimeout(cmd)
}

// ExecutorParams returns the executor parameters set by the repository flags.
func ExecutorParams() executor.Params {
	return executor.Params{
		Source:        Source,
		Path:          Path,
		ConfigPath:    ConfigPath,
		KubeContext:   KubeContext,
		ClientTimeout: ClientTimeout,
	}
}
