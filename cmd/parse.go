package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coltype/coltype/internal/logger"
	"github.com/coltype/coltype/schema"
)

var (
	parseFile   string
	parseSchema string
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Read tables and their logical column types from a DDL file",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to SQL file (required)")
	parseCmd.Flags().StringVar(&parseSchema, "schema", "public", "Default schema for unqualified table names")
	_ = parseCmd.MarkFlagRequired("file")
}

func runParse(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", parseFile, err)
	}

	logger.Get().Debug("parsing DDL", "file", parseFile, "bytes", len(content))

	tables, err := schema.NewParser(parseSchema).ParseSQL(string(content))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	return writeTables(os.Stdout, tables)
}
