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

package service

import (
	"net/http"
	"runtime/pprof"

	"github.com/gin-gonic/gin"
)

// goroutines writes the stacks of every goroutine of the server.
func goroutines(c *gin.Context) {
	profile := pprof.Lookup("goroutine")
	if profile == nil {
		c.String(http.StatusInternalServerError, "unable to find profile for goroutines")
		return
	}
	c.Status(http.StatusOK)
	if err := profile.WriteTo(c.Writer, 2); err != nil {
		// nolint:errcheck
		_, _ = c.Writer.WriteString("error while writing goroutine stacks: " + err.Error())
	}
}
