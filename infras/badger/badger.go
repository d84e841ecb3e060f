package badger

import (
	"hostel/config"

	badgerDB "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// New opens the embedded database backing the default store driver.
func New(config *config.Config) *badgerDB.DB {
	opts := badgerDB.DefaultOptions(config.Store.Badger.Path)
	if config.Store.Badger.InMemory {
		opts = badgerDB.DefaultOptions("").WithInMemory(true)
	}

	opts = opts.WithLogger(nil)

	db, err := badgerDB.Open(opts)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.Store.Badger.Path).Msg("Failed to open badger database")
		panic(err)
	}

	log.Info().
		Str("path", config.Store.Badger.Path).
		Bool("inMemory", config.Store.Badger.InMemory).
		Msg("Opened badger database")

	return db
}
