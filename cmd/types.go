package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coltype/coltype/datatype"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the predefined logical types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, dt := range datatype.Predefined() {
			fmt.Println(dt)
		}
	},
}
