package mw

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/gatekit/gatekit/internal/trace"
)

type LogOpts struct {
	SkipPaths     []string // e.g. /healthz
	RedactHeaders []string
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions
}

// Logger emits a one-line summary per request, plus a redacted header dump
// for responses that failed.
func Logger(opts LogOpts) func(http.Handler) http.Handler {
	redacted := make([]string, len(opts.RedactHeaders))
	for i, h := range opts.RedactHeaders {
		redacted[i] = strings.ToLower(h)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPreflight(r) || slices.Contains(opts.SkipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := httpx.NewRecorder(w)
			next.ServeHTTP(rec, r)
			dur := time.Since(start)

			slog.Info("req",
				"trace", trace.From(r.Context()),
				"m", r.Method,
				"path", r.URL.Path,
				"status", rec.Status,
				"ms", dur.Milliseconds(),
				"bytes", rec.Bytes,
			)

			if rec.Status >= 400 {
				h := map[string]string{}
				for k, vv := range r.Header {
					if len(vv) == 0 {
						continue
					}
					vl := vv[0]
					if slices.Contains(redacted, strings.ToLower(k)) {
						vl = "***redacted***"
					}
					h[k] = vl
				}
				slog.Error("req_detail",
					"trace", trace.From(r.Context()),
					"m", r.Method, "path", r.URL.Path,
					"status", rec.Status, "ms", dur.Milliseconds(),
					"headers", h,
				)
			}
		})
	}
}
