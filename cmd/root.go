package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coltype/coltype/internal/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "coltype",
	Short: "Logical column data types for PostgreSQL schemas",
	Long: `coltype reads PostgreSQL schemas and reports each column's logical
data type label (Boolean, DateTime, Decimal, Integer, Text, VarChar, or a
pass-through label for anything else).

Commands:
  inspect  Read tables from a live database
  parse    Read tables from a DDL file
  types    List the predefined logical types

Use "coltype [command] --help" for more information about a command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(typesCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger.SetGlobal(slog.New(handler))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
