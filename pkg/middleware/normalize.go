package middleware

import "strings"

// NormalizePath maps a raw request path to a bounded-cardinality metric
// label. Per-file static asset paths collapse to "/static" and per-resource
// API paths collapse to "/api/*" so the metric backend never sees an
// unbounded label set. Rules are checked in order; first match wins.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "/static") {
		return "/static"
	}
	if strings.HasPrefix(path, "/api") {
		return "/api/*"
	}
	return path
}
