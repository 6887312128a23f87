// Package utils provides database connection helpers shared by the CLI
// commands.
package utils

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectionConfig holds database connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// DefaultConnectionConfig returns a default connection configuration.
// The password falls back to PGPASSWORD when unset.
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		Host:     "localhost",
		Port:     5432,
		Password: os.Getenv("PGPASSWORD"),
		SSLMode:  "prefer",
	}
}

// BuildDSN constructs a PostgreSQL connection string from connection parameters.
func BuildDSN(config *ConnectionConfig) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("host=%s", config.Host))
	parts = append(parts, fmt.Sprintf("port=%d", config.Port))
	parts = append(parts, fmt.Sprintf("dbname=%s", config.Database))
	parts = append(parts, fmt.Sprintf("user=%s", config.User))

	if config.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", config.Password))
	}
	if config.SSLMode != "" {
		parts = append(parts, fmt.Sprintf("sslmode=%s", config.SSLMode))
	}

	return strings.Join(parts, " ")
}

// Connect establishes a database connection using the provided configuration.
func Connect(config *ConnectionConfig) (*sql.DB, error) {
	conn, err := sql.Open("pgx", BuildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// ConnectWithDSN establishes a database connection using a DSN string.
func ConnectWithDSN(dsn string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}
