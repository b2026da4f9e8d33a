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

package status

import (
	"flag"

	"k8s.io/klog/v2"
)

// panicOnMisuse makes the package panic when an error is built incorrectly.
var panicOnMisuse = false

func init() {
	if flag.Lookup("test.v") != nil {
		// Running with "go test"
		EnablePanicOnMisuse()
	}
}

// EnablePanicOnMisuse makes status panic when it detects a misuse of the
// ErrorBuilder API.
func EnablePanicOnMisuse() {
	panicOnMisuse = true
}

func reportMisuse(message string) {
	if panicOnMisuse {
		panic(message)
	} else {
		// Show it in the logs, but don't kill the application in production.
		klog.Errorf("internal error: %s", message)
	}
}
