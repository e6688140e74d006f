package kv

import (
	"context"
)

// KeyBills is the single key the bill collection is persisted under
const KeyBills = "bills"

// Store is an opaque key-value store holding serialized documents.
// Writes replace the whole value for a key (last write wins); there is
// no partial update.
type Store interface {
	// Get retrieves the value for a key. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the value under key, overwriting any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
