// Package kvstore provides the replaceable key-value persistence layer.
// Each collection is stored as one whole serialized document under a fixed
// key and rewritten in full on every mutation.
package kvstore

import (
	"context"
	"errors"
)

// Collection keys used by the repositories.
const (
	KeyEquipments = "equipments"
	KeyRentals    = "rentals"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store is the storage interface the repositories persist through.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
