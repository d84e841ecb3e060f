package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Get returns the value stored under key, or a copy of def when the key is absent.
func Get[T any](ctx context.Context, s Store, key string, def T) (T, error) {
	raw, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return clone(def)
	}

	if err != nil {
		return def, err
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to decode stored value")

		return def, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return value, nil
}

// Set serializes value and overwrites key with it.
func Set[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to encode value")

		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	return s.Save(ctx, key, raw) //nolint:wrapcheck
}

// Remove deletes key. Removing an absent key succeeds.
func Remove(ctx context.Context, s Store, key string) error {
	return s.Delete(ctx, key) //nolint:wrapcheck
}

// Mutate decodes key (or def when absent), applies fn, and writes the result
// back in the same transaction. fn may return ErrNoChange to skip the write.
func Mutate[T any](ctx context.Context, s Store, key string, def T, fn func(value *T) error) error {
	err := s.Update(ctx, key, func(raw []byte, found bool) ([]byte, error) {
		value, err := decode(raw, found, def)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}

		if err := fn(&value); err != nil {
			return nil, err
		}

		next, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}

		return next, nil
	})
	if errors.Is(err, ErrNoChange) {
		return nil
	}

	return err //nolint:wrapcheck
}

// Snapshot returns every key in the store with its raw JSON value.
func Snapshot(ctx context.Context, s Store) (map[string]json.RawMessage, error) {
	keys, err := s.Keys(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	res := make(map[string]json.RawMessage, len(keys))

	for _, key := range keys {
		raw, err := s.Load(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}

		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !json.Valid(raw) {
			log.Warn().Str("key", key).Msg("skipping non-JSON value in snapshot")

			continue
		}

		res[key] = raw
	}

	return res, nil
}

func decode[T any](raw []byte, found bool, def T) (T, error) {
	if !found {
		return clone(def)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def, err //nolint:wrapcheck
	}

	return value, nil
}

// clone deep-copies def so callers never mutate shared defaults such as the seed catalog.
func clone[T any](def T) (T, error) {
	raw, err := json.Marshal(def)
	if err != nil {
		return def, fmt.Errorf("failed to copy default value: %w", err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def, fmt.Errorf("failed to copy default value: %w", err)
	}

	return value, nil
}
