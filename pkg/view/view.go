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

// Package view renders findings for people and for machines.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"korrecte.dev/korrecte/pkg/lint/lints"
	"korrecte.dev/korrecte/pkg/reporting"
	"sigs.k8s.io/yaml"
)

// Output formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

// Formats returns every supported output format.
func Formats() []string {
	return []string{Text, JSON, YAML}
}

// defaultNamespace is shown for findings on objects without a namespace.
const defaultNamespace = "default"

var groupColors = map[reporting.Group]*color.Color{
	reporting.Audit:         color.New(color.Bold, color.FgYellow),
	reporting.Configuration: color.New(color.Bold, color.FgCyan),
	reporting.Security:      color.New(color.Bold, color.FgRed),
}

var (
	nameColor      = color.New(color.FgGreen)
	namespaceColor = color.New(color.FgBlue)
)

// Render writes findings to w in the given format.
func Render(w io.Writer, format string, findings []reporting.Finding) error {
	switch format {
	case Text, "":
		return renderText(w, findings)
	case JSON:
		return renderJSON(w, findings)
	case YAML:
		return renderYAML(w, findings)
	default:
		return errors.Errorf("unknown output format %q, must be one of %s", format, strings.Join(Formats(), ", "))
	}
}

func renderText(w io.Writer, findings []reporting.Finding) error {
	for _, f := range findings {
		if _, err := fmt.Fprintln(w, Line(f)); err != nil {
			return err
		}
	}
	return nil
}

// Line formats a single finding as
// "<Lint Title> on <name> [<namespace>]. Metadata: k=v, ...".
func Line(f reporting.Finding) string {
	title := lints.Title(f.Lint())
	if c, ok := groupColors[f.Spec.Group]; ok {
		title = c.Sprint(title)
	}
	namespace := f.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	line := fmt.Sprintf("%s on %s [%s].", title, nameColor.Sprint(f.Name), namespaceColor.Sprint(namespace))
	if len(f.Metadata) == 0 {
		return line
	}
	return line + " Metadata: " + formatMetadata(f.Metadata)
}

func formatMetadata(metadata map[string]string) string {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%s", k, metadata[k])
	}
	return strings.Join(pairs, ", ")
}

func renderJSON(w io.Writer, findings []reporting.Finding) error {
	if findings == nil {
		findings = []reporting.Finding{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(findings), "encoding findings")
}

func renderYAML(w io.Writer, findings []reporting.Finding) error {
	if findings == nil {
		findings = []reporting.Finding{}
	}
	out, err := yaml.Marshal(findings)
	if err != nil {
		return errors.Wrap(err, "encoding findings")
	}
	_, err = w.Write(out)
	return err
}
