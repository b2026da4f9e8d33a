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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is the prometheus namespace of every korrecte metric.
const Namespace = "korrecte"

// Metrics contains the Prometheus metrics for korrecte lint passes.
var Metrics = struct {
	EvaluationDuration *prometheus.HistogramVec
	ObjectsLoaded      *prometheus.CounterVec
	SkippedDocuments   prometheus.Counter
	Findings           *prometheus.CounterVec
}{
	EvaluationDuration: prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Help:      "Distribution of durations of lint passes, including loading the objects",
			Namespace: Namespace,
			Name:      "evaluation_duration_seconds",
		},
		// status: success, error
		[]string{"source", "status"},
	),
	ObjectsLoaded: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of objects loaded for linting",
			Namespace: Namespace,
			Name:      "objects_loaded_total",
		},
		[]string{"source"},
	),
	SkippedDocuments: prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Total number of manifest documents skipped because they could not be decoded",
			Namespace: Namespace,
			Name:      "skipped_documents_total",
		},
	),
	Findings: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of findings reported",
			Namespace: Namespace,
			Name:      "findings_total",
		},
		[]string{"lint", "group"},
	),
}

func init() {
	prometheus.MustRegister(
		Metrics.EvaluationDuration,
		Metrics.ObjectsLoaded,
		Metrics.SkippedDocuments,
		Metrics.Findings,
	)
}

// StatusTagValue returns "error" if err is non-nil, and "success" otherwise.
func StatusTagValue(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
