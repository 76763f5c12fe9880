// Package gateway holds the per-entity remote data gateways. Every read
// returns rows or an empty slice, never nil; every backend failure is
// returned as a wrapped error without distinguishing its cause. Mutations
// publish refresh topics best-effort after the write succeeds.
package gateway

import (
	"errors"
	"net/http"
	"time"

	"planner/internal/supabase"
)

// isNoRows reports whether the error is the backend's way of saying a
// single-row request matched nothing. The REST layer answers 406 for an
// empty .Single() result.
func isNoRows(err error) bool {
	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusNotAcceptable
	}
	return false
}

func nowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
