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

// Package serve implements the korrecte serve command.
package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"korrecte.dev/korrecte/cmd/korrecte/flags"
	"korrecte.dev/korrecte/pkg/executor"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/service"
)

// defaultPort is the port the server listens on.
const defaultPort = 8000

var port int

func init() {
	flags.AddRepository(Cmd)
	Cmd.Flags().IntVar(&port, "port", defaultPort, "The port to serve on.")
}

// Cmd is the Cobra object representing the korrecte serve command.
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lint passes over HTTP",
	Long: `Serve lint passes over HTTP.
Every GET /evaluate runs a new lint pass and returns its findings as JSON.
GET /ping answers "ok" and GET /metrics exposes prometheus metrics.`,
	Example: `  korrecte serve --port=8000
  korrecte serve --source=file --path=manifests/`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		router := service.NewRouter(evaluator(flags.ExecutorParams()))
		return service.Serve(ctx, fmt.Sprintf(":%d", port), router)
	},
}

// evaluator runs a full lint pass with params on every call.
func evaluator(params executor.Params) service.EvaluateFunc {
	return func(ctx context.Context) ([]reporting.Finding, error) {
		return executor.Execute(ctx, params)
	}
}
