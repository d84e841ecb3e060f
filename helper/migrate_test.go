package helper_test

import (
	"hostel/config"
	"hostel/helper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Username = "app"
	cfg.DB.Postgres.Password = "secret"
	cfg.DB.Postgres.Host = "db"
	cfg.DB.Postgres.Port = "5432"
	cfg.DB.Postgres.Name = "hostel"
	cfg.DB.Postgres.SSLMode = "disable"

	assert.Equal(t, "postgres://app:secret@db:5432/hostel?sslmode=disable", helper.ConnectionString(cfg))

	cfg.DB.Postgres.MigrationTable = "hostel_migrations"
	assert.Equal(t, "postgres://app:secret@db:5432/hostel?sslmode=disable&x-migrations-table=hostel_migrations", helper.ConnectionString(cfg))
}

func TestRunnerUnknownAction(t *testing.T) {
	cfg := &config.Config{}

	assert.Error(t, helper.Runner(cfg, "sideways"))
}
