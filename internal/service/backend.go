// Package service contains one service per admin screen. Each wraps the
// backend client with typed models and the loose-shape normalization the
// HomeTrack REST backend requires.
package service

import (
	"context"

	"github.com/CAPSTONEPROJECT-OMETRACKINGFALL2025/HomeTrackAdmin/internal/api"
)

// Backend is the slice of the api client the services consume. Narrowing to
// an interface keeps services mockable without touching the transport.
type Backend interface {
	Get(ctx context.Context, path string, opts *api.CallOptions) (any, error)
	Post(ctx context.Context, path string, opts *api.CallOptions) (any, error)
	Put(ctx context.Context, path string, opts *api.CallOptions) (any, error)
	Delete(ctx context.Context, path string, opts *api.CallOptions) (any, error)
}

var _ Backend = (*api.Client)(nil)

// unwrapData peels the optional {"data": ...} envelope some backend endpoints
// wrap their payloads in.
func unwrapData(raw any) any {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw
	}
	if data, present := m["data"]; present && data != nil {
		return data
	}
	return raw
}
