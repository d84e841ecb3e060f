package store

import (
	"context"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/shared/constant"
	"hostel/shared/logger"
	"strings"

	badgerDB "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

type badgerStore struct {
	db         *badgerDB.DB
	prefix     string
	maxRetries int
	otel       otel.Otel
}

func NewBadger(db *badgerDB.DB, prefix string, maxRetries int, otl otel.Otel) Store {
	return &badgerStore{
		db:         db,
		prefix:     prefix,
		maxRetries: maxRetries,
		otel:       otl,
	}
}

func (b *badgerStore) key(key string) []byte {
	return []byte(b.prefix + key)
}

func (b *badgerStore) Load(ctx context.Context, key string) (raw []byte, err error) {
	_, scope := newScope(ctx, b.otel, constant.StoreDriverBadger, "Load", key)
	defer scope.End()

	err = b.db.View(func(txn *badgerDB.Txn) error {
		item, err := txn.Get(b.key(key))
		if err != nil {
			return err
		}

		raw, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badgerDB.ErrKeyNotFound) {
		return nil, ErrNotFound
	}

	if err != nil {
		logger.StoreError(err, constant.StoreDriverBadger, key)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return raw, nil
}

func (b *badgerStore) Save(ctx context.Context, key string, raw []byte) error {
	_, scope := newScope(ctx, b.otel, constant.StoreDriverBadger, "Save", key)
	defer scope.End()

	err := b.db.Update(func(txn *badgerDB.Txn) error {
		return txn.Set(b.key(key), raw)
	})
	if err != nil {
		logger.StoreError(err, constant.StoreDriverBadger, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (b *badgerStore) Delete(ctx context.Context, key string) error {
	_, scope := newScope(ctx, b.otel, constant.StoreDriverBadger, "Delete", key)
	defer scope.End()

	err := b.db.Update(func(txn *badgerDB.Txn) error {
		return txn.Delete(b.key(key))
	})
	if err != nil {
		logger.StoreError(err, constant.StoreDriverBadger, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (b *badgerStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	_, scope := newScope(ctx, b.otel, constant.StoreDriverBadger, "Update", key)
	defer scope.End()

	for attempt := range attempts(b.maxRetries) {
		err := b.db.Update(func(txn *badgerDB.Txn) error {
			var current []byte

			found := false

			item, err := txn.Get(b.key(key))
			switch {
			case errors.Is(err, badgerDB.ErrKeyNotFound):
			case err != nil:
				return err
			default:
				found = true

				current, err = item.ValueCopy(nil)
				if err != nil {
					return err
				}
			}

			next, err := fn(current, found)
			if err != nil {
				return err
			}

			return txn.Set(b.key(key), next)
		})

		if errors.Is(err, badgerDB.ErrConflict) {
			log.Warn().Str("key", key).Int("attempt", attempt+1).Msg("badger transaction conflict, retrying")

			continue
		}

		if err != nil && !errors.Is(err, ErrNoChange) {
			logger.StoreError(err, constant.StoreDriverBadger, key)
			scope.TraceError(err)
		}

		return err
	}

	scope.TraceError(errTooManyConflicts)

	return fmt.Errorf("failed to update %s: %w", key, errTooManyConflicts)
}

func (b *badgerStore) Keys(ctx context.Context) ([]string, error) {
	_, scope := newScope(ctx, b.otel, constant.StoreDriverBadger, "Keys", constant.Empty)
	defer scope.End()

	keys := []string{}

	err := b.db.View(func(txn *badgerDB.Txn) error {
		opts := badgerDB.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(b.prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, strings.TrimPrefix(string(it.Item().Key()), b.prefix))
		}

		return nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}

func (b *badgerStore) Close() error {
	return b.db.Close() //nolint:wrapcheck
}
