// Package api is the typed HTTP client for the HomeTrack REST backend.
//
// Every outbound request, regardless of call site, passes through the same
// pipeline: base-URL resolution, query serialization, header merging, bearer
// attachment, timeout/cancellation, and error normalization. Callers never
// build their own http.Request against the backend.
//
// All failures surface as a single *Error carrying an HTTP-like status code
// (0 for transport failures, timeouts, and cancellation), a human-readable
// message, and the parsed error payload when the backend supplied one.
package api
