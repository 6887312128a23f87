package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coltype/coltype/internal/logger"
	"github.com/coltype/coltype/internal/utils"
	"github.com/coltype/coltype/schema"
)

var (
	inspectHost     string
	inspectPort     int
	inspectDB       string
	inspectUser     string
	inspectSchema   string
	inspectPassword string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read tables and their logical column types from a live database",
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectHost, "host", "localhost", "Database server host")
	inspectCmd.Flags().IntVar(&inspectPort, "port", 5432, "Database server port")
	inspectCmd.Flags().StringVarP(&inspectDB, "db", "d", "", "Database name (required)")
	inspectCmd.Flags().StringVarP(&inspectUser, "user", "U", "", "Database user name (required)")
	inspectCmd.Flags().StringVar(&inspectSchema, "schema", "public", "Schema name")
	inspectCmd.Flags().StringVar(&inspectPassword, "password", "", "Database password (defaults to PGPASSWORD)")
	_ = inspectCmd.MarkFlagRequired("db")
	_ = inspectCmd.MarkFlagRequired("user")
}

func runInspect(cmd *cobra.Command, args []string) error {
	config := utils.DefaultConnectionConfig()
	config.Host = inspectHost
	config.Port = inspectPort
	config.Database = inspectDB
	config.User = inspectUser
	if inspectPassword != "" {
		config.Password = inspectPassword
	}

	db, err := utils.Connect(config)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Get().Debug("inspecting schema", "host", inspectHost, "db", inspectDB, "schema", inspectSchema)

	tables, err := schema.NewInspector(db).Inspect(cmd.Context(), inspectSchema)
	if err != nil {
		return fmt.Errorf("inspect failed: %w", err)
	}

	return writeTables(os.Stdout, tables)
}

func writeTables(w io.Writer, tables []*schema.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}
