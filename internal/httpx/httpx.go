// Package httpx holds small HTTP helpers shared by every service router.
package httpx

import (
	"encoding/json"
	"net"
	"net/http"
)

// IdentityHeader carries the caller name on every authorized request.
const IdentityHeader = "Username"

// CallerName extracts the caller identity from the request. ok reports
// whether the header was present at all; an empty value with the header
// set still counts as present.
func CallerName(r *http.Request) (name string, ok bool) {
	vals, ok := r.Header[http.CanonicalHeaderKey(IdentityHeader)]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

type APIError struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, APIError{Error: msg})
}

// BaseURL reconstructs the externally visible scheme://host for the
// request, honoring X-Forwarded-Proto behind a proxy.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.Header.Get("X-Forwarded-Proto") == "https" || r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if host == "" {
		h, p, _ := net.SplitHostPort(r.URL.Host)
		if h == "" {
			h = "localhost"
		}
		if p == "" {
			p = "80"
		}
		host = net.JoinHostPort(h, p)
	}
	return scheme + "://" + host
}
