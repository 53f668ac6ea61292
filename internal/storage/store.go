// Package storage implements the flat key-value store that underlies all
// persisted state. Keys are strings, values are UTF-8 JSON documents; the
// repositories layered on top decide what lives under each key.
package storage

import "context"

// Store is the durable persistence substrate: string keys, string values.
//
// Get returns common.ErrNotFound (wrapped) when the key is absent, so a
// missing document is distinguishable from an I/O fault. A failed Set must
// surface its error to the caller; implementations never report a write as
// successful when it was not.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
