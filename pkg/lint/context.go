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

package lint

import (
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/repository"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Context is the read-only view of a lint pass handed to every hook.
type Context struct {
	Repository repository.Repository
	Reporter   reporting.Reporter
	Config     config.Config
	// Version is the version of the cluster being linted, or nil if unknown.
	Version *repository.Version
}

// NewContext returns a Context over repo that reports to reporter.
func NewContext(repo repository.Repository, reporter reporting.Reporter, cfg config.Config) *Context {
	return &Context{
		Repository: repo,
		Reporter:   reporter,
		Config:     cfg,
		Version:    repo.Version(),
	}
}

// Objects returns every object of the pass.
func (c *Context) Objects() []client.Object {
	return c.Repository.Objects()
}

// Report records a finding.
func (c *Context) Report(finding reporting.Finding) {
	c.Reporter.Report(finding)
}
