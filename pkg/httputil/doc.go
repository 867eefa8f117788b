// Package httputil provides HTTP handler utilities for consistent JSON
// responses, path parsing and request middleware.
//
// # Response Helpers
//
//	httputil.WriteSuccess(w, body)
//	httputil.WriteNotFoundError(w, "Amino Acid not found")
//	httputil.WriteMethodNotAllowed(w)
//
// # Path parameters
//
//	name, err := httputil.ParsePathString(r, "name")
//
// # Middleware
//
//	handler := httputil.Chain(
//		httputil.RequestIDMiddleware,
//		httputil.LoggingMiddleware(logger),
//		httputil.RecoveryMiddleware(logger),
//	)(router)
//
// RequestIDMiddleware must run before LoggingMiddleware so request lines
// carry the request_id field.
package httputil
