// Package kvstore is the record-store adapter: a single flat namespace of
// JSON documents under string keys. Every entity and every index list the
// service maintains lives behind this contract.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Txn is the view a mutation callback gets. Reads through a Txn lock the
// keys they touch until the enclosing Update commits, so a
// read-modify-write of an index list cannot race another writer.
type Txn interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
}

type Store interface {
	// Get unmarshals the record stored under key into dest.
	// Returns ErrNotFound when the key is absent.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set stores value (JSON-marshaled) under key, replacing any
	// previous record.
	Set(ctx context.Context, key string, value interface{}) error

	// GetByPrefix returns the raw values of every key starting with
	// prefix, in key order.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)

	// MGet returns one entry per requested key, order-preserving.
	// Absent keys yield a nil entry.
	MGet(ctx context.Context, keys []string) ([]json.RawMessage, error)

	// Update runs fn atomically. Writes made through the Txn become
	// visible all at once or not at all.
	Update(ctx context.Context, fn func(txn Txn) error) error
}
