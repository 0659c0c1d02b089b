package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/Dali-debug/Jinen/internal/db"
)

// PostgresStore keeps every record in one kv_store table
// (key text primary key, value jsonb). Update callbacks run inside a
// single transaction; Txn reads take a row lock (FOR UPDATE) so that
// concurrent index-list mutations serialize instead of last-write-wins.
type PostgresStore struct {
	db db.DB
}

func NewPostgresStore(database db.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

// EnsureSchema creates the kv_store table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS kv_store (
            key   TEXT PRIMARY KEY,
            value JSONB NOT NULL
        )
    `)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, key string, dest interface{}) error {
	var raw []byte
	err := s.db.ExecQueryRow(ctx,
		"SELECT value FROM kv_store WHERE key = $1", key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("kvstore get %q: %w", key, err)
	}
	return json.Unmarshal(raw, dest)
}

func (s *PostgresStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore set %q: %w", key, err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO kv_store (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `, key, raw)
	return err
}

func (s *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	var rows []kvRow
	err := s.db.Select(ctx, &rows, `
        SELECT key, value FROM kv_store
        WHERE key LIKE $1 || '%'
        ORDER BY key
    `, prefix)
	if err != nil {
		return nil, fmt.Errorf("kvstore prefix scan %q: %w", prefix, err)
	}

	values := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		values = append(values, json.RawMessage(row.Value))
	}
	return values, nil
}

func (s *PostgresStore) MGet(ctx context.Context, keys []string) ([]json.RawMessage, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var rows []kvRow
	err := s.db.Select(ctx, &rows,
		"SELECT key, value FROM kv_store WHERE key = ANY($1)", keys)
	if err != nil {
		return nil, fmt.Errorf("kvstore mget: %w", err)
	}

	byKey := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		byKey[row.Key] = json.RawMessage(row.Value)
	}

	values := make([]json.RawMessage, len(keys))
	for i, key := range keys {
		values[i] = byKey[key]
	}
	return values, nil
}

// Update runs fn in a SERIALIZABLE transaction. Row locks cover
// read-modify-write of existing keys; serializable isolation covers the
// case where two writers race to create the same key, which one of them
// then retries.
func (s *PostgresStore) Update(ctx context.Context, fn func(txn Txn) error) error {
	var err error
	for attempt := 0; attempt < updateRetries; attempt++ {
		err = s.tryUpdate(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("kvstore update: retries exhausted: %w", err)
}

const updateRetries = 3

func (s *PostgresStore) tryUpdate(ctx context.Context, fn func(txn Txn) error) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("kvstore update: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE"); err != nil {
		return fmt.Errorf("kvstore update: set isolation: %w", err)
	}

	if err := fn(&pgTxn{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

type kvRow struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

type pgTxn struct {
	tx db.Tx
}

func (t *pgTxn) Get(ctx context.Context, key string, dest interface{}) error {
	var raw []byte
	err := t.tx.ExecQueryRow(ctx,
		"SELECT value FROM kv_store WHERE key = $1 FOR UPDATE", key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("kvstore txn get %q: %w", key, err)
	}
	return json.Unmarshal(raw, dest)
}

func (t *pgTxn) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore txn set %q: %w", key, err)
	}
	_, err = t.tx.Exec(ctx, `
        INSERT INTO kv_store (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `, key, raw)
	return err
}
