// Package storetest opens throwaway in-memory stores for tests.
package storetest

import (
	"hostel/infras/otel/mocks"
	"hostel/internal/domains/store"
	"testing"

	badgerDB "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// New returns an in-memory badger store closed when t finishes.
func New(t *testing.T) store.Store {
	t.Helper()

	db, err := badgerDB.Open(badgerDB.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)

	s := store.NewBadger(db, "test:", 3, mocks.NewOtel())

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
