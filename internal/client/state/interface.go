// Package state persists client-side key/value state in a local sqlite
// database. It is the Go counterpart of the browser's local storage: the
// session resolver owns the three session keys and no other component
// writes them.
package state

import "context"

// Keys owned by the session resolver.
const (
	KeyToken    = "token"
	KeyDemoMode = "demoMode"
	KeyDemoUser = "demoUser"
)

// Store is a process-wide key/value store.
//
// Get returns common.ErrNotFound for a missing key. Delete and Clear are
// idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
