package coltype

import (
	"context"

	"github.com/coltype/coltype/internal/utils"
	"github.com/coltype/coltype/schema"
)

// DatabaseConfig holds connection parameters for InspectSchema.
type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
}

// ParseSQL is a convenience function to parse CREATE TABLE statements into
// table descriptors, placing unqualified tables in the public schema.
func ParseSQL(sqlContent string) ([]*Table, error) {
	return schema.NewParser("").ParseSQL(sqlContent)
}

// InspectSchema is a convenience function to read the tables of a schema
// from a live database in one call.
func InspectSchema(ctx context.Context, dbConfig DatabaseConfig, schemaName string) ([]*Table, error) {
	config := utils.DefaultConnectionConfig()
	if dbConfig.Host != "" {
		config.Host = dbConfig.Host
	}
	if dbConfig.Port != 0 {
		config.Port = dbConfig.Port
	}
	config.Database = dbConfig.Database
	config.User = dbConfig.User
	if dbConfig.Password != "" {
		config.Password = dbConfig.Password
	}
	if dbConfig.SSLMode != "" {
		config.SSLMode = dbConfig.SSLMode
	}

	db, err := utils.Connect(config)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if schemaName == "" {
		schemaName = "public"
	}
	return schema.NewInspector(db).Inspect(ctx, schemaName)
}
