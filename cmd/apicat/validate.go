package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stalwar-deckers/catalog/pkg/catalog"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a catalog file or directory against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d APIs in %d categories (%s)\n",
			args[0], store.Len(), len(store.Categories()), strings.Join(store.Categories(), ", "))
		return nil
	},
}
