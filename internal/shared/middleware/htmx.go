// Package middleware holds the HTTP middleware shared by the web server.
package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMX marks requests sent by htmx (HX-Request: true) in the request
// context so handlers can answer with a partial instead of a full page.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IsHTMX reports whether HTMX marked the request. It is false when the
// middleware did not run.
func IsHTMX(r *http.Request) bool {
	v, _ := r.Context().Value(htmxKey).(bool)
	return v
}
