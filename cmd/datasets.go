package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the loaded datasets and their facility types",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		for _, d := range snap.Datasets() {
			fmt.Printf("%-20s %-10s %4d records  types: %s\n",
				d.Name, d.Kind, len(d.Records), strings.Join(d.Types(), ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
