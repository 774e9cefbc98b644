// Package id provides request identifiers for the Heart Rate Monitor API.
//
// Generated request IDs are UUID v4 strings. IDs supplied by clients in the
// X-Request-ID header are accepted when ValidateRequestID allows them, so
// upstream proxies can correlate their own logs:
//
//	if !id.ValidateRequestID(incoming) {
//	    incoming = id.NewRequestID()
//	}
//
// All functions are safe for concurrent use.
package id
