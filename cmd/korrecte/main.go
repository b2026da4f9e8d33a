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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/cmd/korrecte/errorcodes"
	"korrecte.dev/korrecte/cmd/korrecte/lint"
	"korrecte.dev/korrecte/cmd/korrecte/lints"
	"korrecte.dev/korrecte/cmd/korrecte/serve"
	"korrecte.dev/korrecte/cmd/korrecte/version"
	pkgversion "korrecte.dev/korrecte/pkg/version"
)

const (
	// versionTemplate is the template used when "korrecte --version" is
	// invoked. It outputs "<VERSION>" for easier programmatic use.
	versionTemplate = `{{.Version}}
`
)

var (
	rootCmd = &cobra.Command{
		Use:     "korrecte",
		Version: pkgversion.VERSION,
		Short: fmt.Sprintf(
			"Find misconfigurations in Kubernetes objects (version %v)", pkgversion.VERSION),
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	rootCmd.AddCommand(errorcodes.Cmd)
	rootCmd.AddCommand(lint.Cmd)
	rootCmd.AddCommand(lints.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	// Use the default flag set, because some libs register flags with init.
	fs := flag.CommandLine

	// Register klog flags
	klog.InitFlags(fs)

	// Cobra uses the pflag lib, instead of the go flag lib.
	// So re-register all go flags as global (aka persistent) pflags.
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
