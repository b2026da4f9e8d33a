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

// Package executor runs a complete lint pass: it loads the config, builds the
// repository, evaluates the selected lints and records metrics.
package executor

import (
	"context"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/client/restconfig"
	"korrecte.dev/korrecte/pkg/config"
	"korrecte.dev/korrecte/pkg/lint"
	"korrecte.dev/korrecte/pkg/lint/lints"
	"korrecte.dev/korrecte/pkg/metrics"
	"korrecte.dev/korrecte/pkg/reporting"
	"korrecte.dev/korrecte/pkg/repository"
	"korrecte.dev/korrecte/pkg/status"
)

// Params contains all parameters needed to execute a lint pass.
type Params struct {
	// Source is either repository.SourceAPI or repository.SourceFile.
	Source string
	// Path is the file or directory read when Source is repository.SourceFile.
	Path string
	// ConfigPath is the TOML config file. Defaults to config.DefaultPath.
	ConfigPath string
	// Only restricts the pass to these lints when non-empty.
	Only []string
	// Clientset lists objects when Source is repository.SourceAPI. When nil
	// one is built from the local rest config.
	Clientset kubernetes.Interface
	// KubeContext selects a kubeconfig context. When empty the in-cluster
	// config or the current context is used.
	KubeContext string
	// ClientTimeout bounds requests to the API server.
	ClientTimeout time.Duration
}

// Execute runs a lint pass and returns its findings in report order.
func Execute(ctx context.Context, params Params) (findings []reporting.Finding, err error) {
	source := params.Source
	if source == "" {
		source = repository.SourceAPI
	}
	start := time.Now()
	defer func() {
		metrics.Metrics.EvaluationDuration.WithLabelValues(source, metrics.StatusTagValue(err)).
			Observe(time.Since(start).Seconds())
	}()

	configPath := params.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	selected, errs := lints.Select(cfg, params.Only)
	if errs != nil {
		return nil, errs
	}

	repo, err := loadRepository(ctx, source, params)
	if err != nil {
		return nil, err
	}

	reporter := reporting.NewBuffer()
	lint.Evaluate(lint.NewContext(repo, reporter, cfg), selected)

	findings = reporter.Findings()
	for _, f := range findings {
		metrics.Metrics.Findings.WithLabelValues(f.Lint(), string(f.Spec.Group)).Inc()
	}
	klog.V(1).Infof("Ran %d lints over %d objects: %d findings", len(selected), len(repo.Objects()), len(findings))
	return findings, nil
}

func loadRepository(ctx context.Context, source string, params Params) (repository.Repository, error) {
	switch source {
	case repository.SourceFile:
		if params.Path == "" {
			return nil, status.InvalidOptionError("a path is required to lint %s sources", repository.SourceFile)
		}
		repo, errs := repository.FromPath(params.Path)
		if status.HasBlockingErrors(errs) {
			return nil, errs
		}
		if errs != nil {
			klog.Warningf("Skipped %d manifest documents:\n%s", len(errs.Errors()), status.FormatMultiLine(errs))
		}
		return repo, nil

	case repository.SourceAPI:
		clientset := params.Clientset
		if clientset == nil {
			var err error
			if clientset, err = newClientset(params.KubeContext, params.ClientTimeout); err != nil {
				return nil, err
			}
		}
		return repository.FromCluster(ctx, clientset)

	default:
		return nil, status.InvalidOptionError("unknown source %q, must be %q or %q",
			source, repository.SourceAPI, repository.SourceFile)
	}
}

func newClientset(kubeContext string, timeout time.Duration) (kubernetes.Interface, error) {
	if timeout == 0 {
		timeout = restconfig.DefaultTimeout
	}
	cfg, err := restConfig(kubeContext, timeout)
	if err != nil {
		return nil, err
	}
	return kubernetes.NewForConfig(cfg)
}

func restConfig(kubeContext string, timeout time.Duration) (*rest.Config, error) {
	if kubeContext == "" {
		if name, err := restconfig.CurrentContextName(); err == nil && name != "" {
			klog.V(1).Infof("Linting cluster of the current context %q", name)
		}
		return restconfig.NewRestConfig(timeout)
	}

	cfgs, err := restconfig.AllKubectlConfigs(timeout, []string{kubeContext})
	if cfg, ok := cfgs[kubeContext]; ok {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, status.InvalidOptionError("context %q not found in kubeconfig", kubeContext)
}
