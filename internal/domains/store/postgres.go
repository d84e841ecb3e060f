package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/shared/constant"
	"hostel/shared/logger"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	queryLoad   = `SELECT value FROM kv_store WHERE key = $1`
	queryLock   = `SELECT pg_advisory_xact_lock(hashtext($1))`
	queryDelete = `DELETE FROM kv_store WHERE key = $1`
	queryKeys   = `SELECT key FROM kv_store WHERE starts_with(key, $1) ORDER BY key`
	queryUpsert = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
)

type postgresStore struct {
	db     *sqlx.DB
	prefix string
	otel   otel.Otel
}

// NewPostgres stores every key as a JSONB row of kv_store. Updates hold a
// transaction-scoped advisory lock on the key, so absent keys are covered too.
func NewPostgres(db *sqlx.DB, prefix string, otl otel.Otel) Store {
	return &postgresStore{
		db:     db,
		prefix: prefix,
		otel:   otl,
	}
}

func (p *postgresStore) key(key string) string {
	return p.prefix + key
}

func (p *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, scope := newScope(ctx, p.otel, constant.StoreDriverPostgres, "Load", key)
	defer scope.End()

	var raw []byte

	err := p.db.GetContext(ctx, &raw, queryLoad, p.key(key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		logger.StoreError(err, constant.StoreDriverPostgres, key)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return raw, nil
}

func (p *postgresStore) Save(ctx context.Context, key string, raw []byte) error {
	ctx, scope := newScope(ctx, p.otel, constant.StoreDriverPostgres, "Save", key)
	defer scope.End()

	if _, err := p.db.ExecContext(ctx, queryUpsert, p.key(key), string(raw)); err != nil {
		logger.StoreError(err, constant.StoreDriverPostgres, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	ctx, scope := newScope(ctx, p.otel, constant.StoreDriverPostgres, "Delete", key)
	defer scope.End()

	if _, err := p.db.ExecContext(ctx, queryDelete, p.key(key)); err != nil {
		logger.StoreError(err, constant.StoreDriverPostgres, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Update(ctx context.Context, key string, fn UpdateFunc) (err error) {
	ctx, scope := newScope(ctx, p.otel, constant.StoreDriverPostgres, "Update", key)
	defer scope.End()

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.StoreError(err, constant.StoreDriverPostgres, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = p.update(ctx, tx, p.key(key), fn); err != nil {
		if !errors.Is(err, ErrNoChange) {
			logger.StoreError(err, constant.StoreDriverPostgres, key)
			scope.TraceError(err)
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.StoreError(err, constant.StoreDriverPostgres, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) update(ctx context.Context, tx *sqlx.Tx, key string, fn UpdateFunc) error {
	if _, err := tx.ExecContext(ctx, queryLock, key); err != nil {
		return fmt.Errorf("failed to lock %s: %w", key, err)
	}

	var current []byte

	found := true

	err := tx.GetContext(ctx, &current, queryLoad, key)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		found = false
	case err != nil:
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, queryUpsert, key, string(next)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Keys(ctx context.Context) ([]string, error) {
	ctx, scope := newScope(ctx, p.otel, constant.StoreDriverPostgres, "Keys", constant.Empty)
	defer scope.End()

	keys := []string{}

	if err := p.db.SelectContext(ctx, &keys, queryKeys, p.prefix); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	for i, key := range keys {
		keys[i] = strings.TrimPrefix(key, p.prefix)
	}

	return keys, nil
}

func (p *postgresStore) Close() error {
	return p.db.Close() //nolint:wrapcheck
}
