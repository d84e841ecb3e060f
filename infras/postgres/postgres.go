package postgres

//nolint:revive
import (
	"fmt"
	"hostel/config"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// New connects to the database holding the kv_store table.
func New(config *config.Config) *sqlx.DB {
	pg := config.DB.Postgres

	db := CreatePostgresConnection(
		pg.Username,
		pg.Password,
		pg.Host,
		pg.Port,
		DBName(*config),
		pg.SSLMode,
		pg.MaxRetry,
		pg.RetryWaitTime,
	)
	if db == nil {
		log.Fatal().Str("host", pg.Host).Msg("Could not connect to database")
	}

	return db
}

// DBName returns the database name with prefix if configured
func DBName(config config.Config) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + config.DB.Postgres.Name
	}

	return config.DB.Postgres.Name
}

// Descriptor builds the connection URL for lib/pq and golang-migrate.
func Descriptor(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := Descriptor(username, password, host, port, dbName, sslMode)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
