package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration and report what would be served",
	Long: `Check builds the full snapshot the way a server startup would: place
tree invariants, alias targets, tier scope keys, and every dataset load.
Any violation is reported and the command exits non-zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		fmt.Printf("Places: %d (root %q)\n", snap.Tree.Len(), snap.Tree.Root().ID)
		fmt.Printf("Municipalities: %d\n", len(snap.Tree.Municipalities()))
		for _, d := range snap.Datasets() {
			fmt.Printf("Dataset %-20s %-10s %d records", d.Name, d.Kind, len(d.Records))
			if d.Skipped > 0 {
				fmt.Printf(" (%d skipped: bad coordinates)", d.Skipped)
			}
			fmt.Println()
		}
		fmt.Println("Configuration OK.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
