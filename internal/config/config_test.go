package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =====================
// DSN
// =====================

func TestDSN_BuiltFromPostgresFields(t *testing.T) {
	cfg := Config{
		PostgresUser:     "app",
		PostgresPassword: "secret",
		PostgresDB:       "msistore",
		PostgresHost:     "db",
		PostgresPort:     5433,
		PostgresSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=msistore sslmode=disable",
		cfg.DSN(),
	)
}

// DATABASE_URLが設定されていれば個別項目より優先する
func TestDSN_DatabaseURLWins(t *testing.T) {
	cfg := Config{
		DatabaseURL:  "postgres://app:secret@db:5433/msistore",
		PostgresHost: "ignored",
	}

	assert.Equal(t, "postgres://app:secret@db:5433/msistore", cfg.DSN())
}
