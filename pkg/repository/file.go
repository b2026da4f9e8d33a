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

package repository

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/metrics"
	"korrecte.dev/korrecte/pkg/object"
	"korrecte.dev/korrecte/pkg/status"
	"sigs.k8s.io/controller-runtime/pkg/client"
	kyaml "sigs.k8s.io/kustomize/kyaml/yaml"
)

const (
	// SourceFile is the metrics source of objects read from manifest files.
	SourceFile = "file"
	// SourceAPI is the metrics source of objects listed from a cluster.
	SourceAPI = "api"
)

// yamlWhitespace records the two valid YAML whitespace characters.
const yamlWhitespace = " \t"

// FromPath reads every manifest under path, which may be a single file or a
// directory. Directories are walked in lexical order and only .yaml, .yml and
// .json files are read.
//
// Documents that cannot be decoded are skipped and returned as non-blocking
// errors alongside the repository. A path that cannot be read is a blocking
// error.
func FromPath(path string) (*Snapshot, status.MultiError) {
	files, err := manifestFiles(path)
	if err != nil {
		return nil, status.Append(nil, status.PathWrapError(err, path))
	}

	var objects []client.Object
	var errs status.MultiError
	for _, file := range files {
		objs, fileErrs := readFile(file)
		objects = append(objects, objs...)
		errs = status.Append(errs, fileErrs)
	}

	metrics.Metrics.ObjectsLoaded.WithLabelValues(SourceFile).Add(float64(len(objects)))
	klog.V(1).Infof("Loaded %d objects from %d files under %s", len(objects), len(files), path)
	return New(objects, nil), errs
}

func manifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isManifestFile(p) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func isManifestFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml", ".json":
		return true
	default:
		return false
	}
}

func readFile(path string) ([]client.Object, status.MultiError) {
	contents, err := os.ReadFile(path)
	if err != nil {
		klog.Errorf("Failed to read manifest file %s: %v", path, err)
		return nil, status.Append(nil, status.PathWrapError(err, path))
	}

	var documents []string
	if filepath.Ext(path) == ".json" {
		// A JSON file holds exactly one object.
		documents = []string{string(contents)}
	} else {
		// A newline followed by triple-dash begins a new YAML document.
		documents = strings.Split(string(contents), "\n---")
	}

	var objects []client.Object
	var errs status.MultiError
	for _, document := range documents {
		if isEmptyYAMLDocument(document) {
			continue
		}
		objs, docErrs := parseDocument(document)
		objects = append(objects, objs...)
		for _, err := range docErrs {
			metrics.Metrics.SkippedDocuments.Inc()
			klog.Warningf("Skipping document in %s: %v", path, err)
			errs = status.Append(errs, status.InFile(err, path))
		}
	}
	return objects, errs
}

func isEmptyYAMLDocument(document string) bool {
	lines := strings.Split(document, "\n")
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, yamlWhitespace)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "#") {
			// Ignore empty/whitespace-only/comment lines.
			continue
		}
		return false
	}
	return true
}

// parseDocument decodes a single document. List kinds are flattened into
// their items.
func parseDocument(document string) ([]client.Object, []status.Error) {
	node, err := kyaml.Parse(document)
	if err != nil {
		return nil, []status.Error{status.ManifestParseError(err)}
	}
	if node.IsNilOrEmpty() {
		return nil, nil
	}

	if isList(node) {
		items, err := node.Pipe(kyaml.Lookup("items"))
		if err != nil {
			return nil, []status.Error{status.ManifestParseError(err)}
		}
		if items == nil {
			return nil, nil
		}
		elements, err := items.Elements()
		if err != nil {
			return nil, []status.Error{status.ManifestParseError(err)}
		}

		var objects []client.Object
		var errs []status.Error
		for _, element := range elements {
			obj, err := decodeNode(element)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			objects = append(objects, obj)
		}
		return objects, errs
	}

	obj, sErr := decodeNode(node)
	if sErr != nil {
		return nil, []status.Error{sErr}
	}
	return []client.Object{obj}, nil
}

func isList(node *kyaml.RNode) bool {
	return strings.HasSuffix(node.GetKind(), "List") && node.Field("items") != nil
}

func decodeNode(node *kyaml.RNode) (client.Object, status.Error) {
	apiVersion, kind := node.GetApiVersion(), node.GetKind()
	if apiVersion == "" || kind == "" {
		return nil, status.ObjectParseError(apiVersion, kind, errors.New("apiVersion and kind are required"))
	}
	body, err := node.MarshalJSON()
	if err != nil {
		return nil, status.ObjectParseError(apiVersion, kind, err)
	}
	return object.Decode(body, apiVersion, kind)
}
