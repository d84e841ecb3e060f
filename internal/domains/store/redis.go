package store

import (
	"context"
	"errors"
	"fmt"
	"hostel/infras/otel"
	"hostel/shared/constant"
	"hostel/shared/logger"
	"strings"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisScanCount = 100

type redisStore struct {
	client     *goRedis.Client
	prefix     string
	maxRetries int
	otel       otel.Otel
}

func NewRedis(client *goRedis.Client, prefix string, maxRetries int, otl otel.Otel) Store {
	return &redisStore{
		client:     client,
		prefix:     prefix,
		maxRetries: maxRetries,
		otel:       otl,
	}
}

func (r *redisStore) key(key string) string {
	return r.prefix + key
}

func (r *redisStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, scope := newScope(ctx, r.otel, constant.StoreDriverRedis, "Load", key)
	defer scope.End()

	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		logger.StoreError(err, constant.StoreDriverRedis, key)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	return raw, nil
}

func (r *redisStore) Save(ctx context.Context, key string, raw []byte) error {
	ctx, scope := newScope(ctx, r.otel, constant.StoreDriverRedis, "Save", key)
	defer scope.End()

	if err := r.client.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		logger.StoreError(err, constant.StoreDriverRedis, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	ctx, scope := newScope(ctx, r.otel, constant.StoreDriverRedis, "Delete", key)
	defer scope.End()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		logger.StoreError(err, constant.StoreDriverRedis, key)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

// Update uses WATCH/MULTI so a concurrent write to key aborts and retries the transaction.
func (r *redisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	ctx, scope := newScope(ctx, r.otel, constant.StoreDriverRedis, "Update", key)
	defer scope.End()

	fullKey := r.key(key)

	txf := func(tx *goRedis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Bytes()
		found := true

		switch {
		case errors.Is(err, goRedis.Nil):
			found = false
		case err != nil:
			return err
		}

		next, err := fn(current, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)

			return nil
		})

		return err
	}

	for attempt := range attempts(r.maxRetries) {
		err := r.client.Watch(ctx, txf, fullKey)
		if errors.Is(err, goRedis.TxFailedErr) {
			log.Warn().Str("key", key).Int("attempt", attempt+1).Msg("redis transaction conflict, retrying")

			continue
		}

		if err != nil && !errors.Is(err, ErrNoChange) {
			logger.StoreError(err, constant.StoreDriverRedis, key)
			scope.TraceError(err)
		}

		return err
	}

	scope.TraceError(errTooManyConflicts)

	return fmt.Errorf("failed to update %s: %w", key, errTooManyConflicts)
}

func (r *redisStore) Keys(ctx context.Context) ([]string, error) {
	ctx, scope := newScope(ctx, r.otel, constant.StoreDriverRedis, "Keys", constant.Empty)
	defer scope.End()

	keys := []string{}

	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.prefix))
	}

	if err := iter.Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}

func (r *redisStore) Close() error {
	return r.client.Close() //nolint:wrapcheck
}
