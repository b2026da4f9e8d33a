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

// Package service serves lint passes over HTTP.
package service

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
	"korrecte.dev/korrecte/pkg/reporting"
)

// EvaluateFunc runs one lint pass.
type EvaluateFunc func(ctx context.Context) ([]reporting.Finding, error)

// EvaluateResponse is the body of a successful GET /evaluate.
type EvaluateResponse struct {
	// ID identifies the pass in the server logs.
	ID       string              `json:"id"`
	Findings []reporting.Finding `json:"findings"`
}

// ErrorResponse is the body of a failed GET /evaluate.
type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// noCache positively turns off page caching.
func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}

// logRequests logs every request at V(2).
func logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		klog.V(2).Infof("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// NewRouter returns the routes of the korrecte server:
//
//	GET /ping      liveness, always "ok"
//	GET /evaluate  runs a lint pass and returns its findings
//	GET /metrics   prometheus metrics
//	GET /threads   goroutine stacks
func NewRouter(evaluate EvaluateFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logRequests())

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/evaluate", noCache(), evaluateHandler(evaluate))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/threads", noCache(), goroutines)
	return r
}

func evaluateHandler(evaluate EvaluateFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		findings, err := evaluate(c.Request.Context())
		if err != nil {
			klog.Errorf("Evaluation %s failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{ID: id, Error: err.Error()})
			return
		}
		if findings == nil {
			findings = []reporting.Finding{}
		}
		klog.Infof("Evaluation %s reported %d findings", id, len(findings))
		c.JSON(http.StatusOK, EvaluateResponse{ID: id, Findings: findings})
	}
}

// shutdownTimeout bounds how long in-flight requests may run once the server
// is asked to stop.
const shutdownTimeout = 10 * time.Second

// Serve listens on addr until ctx is done.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.Infof("Serving on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		klog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
