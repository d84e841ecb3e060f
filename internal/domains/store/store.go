package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hostel/config"
	"hostel/infras/badger"
	"hostel/infras/otel"
	"hostel/infras/postgres"
	"hostel/infras/redis"
	"hostel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotFound is returned by Load when the key has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrNoChange aborts an Update without writing.
	ErrNoChange = errors.New("no change")

	errTooManyConflicts = errors.New("too many concurrent updates")
)

// UpdateFunc receives the current raw value of a key and returns its replacement.
type UpdateFunc func(raw []byte, found bool) ([]byte, error)

// Store is a whole-value key/value store. Every value is overwritten in full.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, raw []byte) error
	Delete(ctx context.Context, key string) error
	// Update runs a read-modify-write of key inside a single driver transaction.
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// New opens the store driver selected by STORE_DRIVER.
func New(cfg *config.Config, otl otel.Otel) Store {
	prefix := cfg.Store.Prefix
	retries := cfg.Store.MaxRetries

	switch cfg.Store.Driver {
	case constant.StoreDriverRedis:
		return NewRedis(redis.New(cfg), prefix, retries, otl)
	case constant.StoreDriverPostgres:
		return NewPostgres(postgres.New(cfg), prefix, otl)
	case constant.StoreDriverBadger, constant.Empty:
		return NewBadger(badger.New(cfg), prefix, retries, otl)
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("Unknown store driver")

		return nil
	}
}

func newScope(ctx context.Context, otl otel.Otel, driver, method, key string) (context.Context, otel.Scope) {
	ctx, scope := otl.NewScope(ctx, constant.OtelStoreScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelStoreScopeName, driver, method))
	if key != constant.Empty {
		scope.SetAttribute(constant.OtelKeyAttribute, key)
	}

	return ctx, scope
}

func attempts(maxRetries int) int {
	return max(maxRetries, 0) + 1
}
