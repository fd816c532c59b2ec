package mw

import (
	"log/slog"
	"net/http"

	"github.com/gatekit/gatekit/internal/access"
	"github.com/gatekit/gatekit/internal/httpx"
	"github.com/gatekit/gatekit/internal/trace"
)

// Fixed client-facing messages. Every authorization failure collapses into
// one of these two so a caller cannot probe which names exist.
const (
	MsgMissingIdentity = "Username header is missing."
	MsgAccessDenied    = "Access denied."
)

// RequireIdentity is the authorization gate: it extracts the caller name
// from the identity header, derives the operation from the HTTP method,
// and asks the checker before the protected handler runs.
//
// Missing header rejects with 400 before any directory traffic. A deny,
// a checker error, or a panic on the check path all reject with 401 —
// internal failures must never surface as a 500 or, worse, a grant.
func RequireIdentity(checker access.Checker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := httpx.CallerName(r)
			if !ok {
				httpx.WriteError(w, http.StatusBadRequest, MsgMissingIdentity)
				return
			}

			op := access.OperationFromMethod(r.Method)
			decision := check(r, checker, caller, op)
			if !decision.Allowed {
				slog.Info("access denied",
					"trace", trace.From(r.Context()),
					"caller", caller,
					"op", string(op),
					"reason", decision.Reason,
				)
				httpx.WriteError(w, http.StatusUnauthorized, MsgAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// check isolates the fail-closed discipline: an error or panic from the
// checker is a denial, never an escape.
func check(r *http.Request, checker access.Checker, caller string, op access.Operation) (decision access.Decision) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("checker panicked",
				"trace", trace.From(r.Context()),
				"caller", caller,
				"panic", rec,
			)
			decision = access.Decision{Reason: "checker panic"}
		}
	}()

	decision, err := checker.Check(r.Context(), caller, op)
	if err != nil {
		slog.Error("checker failed",
			"trace", trace.From(r.Context()),
			"caller", caller,
			"err", err,
		)
		return access.Decision{Reason: "checker error"}
	}
	return decision
}
