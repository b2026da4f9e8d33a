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

package reporting

// Reporter collects findings.
type Reporter interface {
	// Report records a finding.
	Report(finding Finding)
	// Findings returns every reported finding in report order.
	Findings() []Finding
}

// Buffer is a Reporter that keeps findings in memory.
// It is not safe for concurrent use; a lint pass is single-threaded.
type Buffer struct {
	findings []Finding
}

var _ Reporter = &Buffer{}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Report implements Reporter.
func (b *Buffer) Report(finding Finding) {
	b.findings = append(b.findings, finding)
}

// Findings implements Reporter.
func (b *Buffer) Findings() []Finding {
	return append([]Finding(nil), b.findings...)
}

// FilterByLint returns the findings produced by the lint named name.
func FilterByLint(findings []Finding, name string) []Finding {
	var result []Finding
	for _, f := range findings {
		if f.Lint() == name {
			result = append(result, f)
		}
	}
	return result
}
