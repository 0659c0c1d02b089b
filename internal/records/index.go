package records

import (
	"context"
	"errors"

	"github.com/Dali-debug/Jinen/internal/kvstore"
)

// Index lists are stored as JSON arrays of record ids. They are only ever
// touched inside a store Update, so the read-modify-write below cannot
// interleave with another writer. Membership is checked before inserting:
// a replayed request must not duplicate an id in a list view.

func readIndex(ctx context.Context, txn kvstore.Txn, key string) ([]string, error) {
	var ids []string
	if err := txn.Get(ctx, key, &ids); err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ids, nil
}

func appendIndex(ctx context.Context, txn kvstore.Txn, key, id string) error {
	ids, err := readIndex(ctx, txn, key)
	if err != nil {
		return err
	}
	if contains(ids, id) {
		return nil
	}
	return txn.Set(ctx, key, append(ids, id))
}

// prependIndex keeps newest-first order (diary updates, payment histories).
func prependIndex(ctx context.Context, txn kvstore.Txn, key, id string) error {
	ids, err := readIndex(ctx, txn, key)
	if err != nil {
		return err
	}
	if contains(ids, id) {
		return nil
	}
	return txn.Set(ctx, key, append([]string{id}, ids...))
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
