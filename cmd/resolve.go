package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glennballman/Community-Canvas-sub001/internal/cascade"
)

var resolveFlat bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [municipality]",
	Short: "List the data sources applying to a municipality",
	Long: `Resolve merges the provincial, regional, and municipal source tiers for
a municipality named in free text. Provincial sources always apply; an
unrecognized name still yields the provincial tier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		res := snap.ResolveSources(args[0])

		if resolveFlat {
			for _, s := range res.Flatten() {
				printSource(s)
			}
			return nil
		}

		if res.RegionName != "" {
			fmt.Printf("Region: %s\n", res.RegionName)
		}
		tiers := []struct {
			label   string
			sources []cascade.Source
		}{
			{"Provincial", res.Provincial},
			{"Regional", res.Regional},
			{"Municipal", res.Municipal},
		}
		for _, tier := range tiers {
			fmt.Printf("%s (%d):\n", tier.label, len(tier.sources))
			for _, s := range tier.sources {
				fmt.Print("  ")
				printSource(s)
			}
		}
		return nil
	},
}

func printSource(s cascade.Source) {
	if s.URL != "" {
		fmt.Printf("%-30s %-12s %s\n", s.Name, s.Category, s.URL)
		return
	}
	fmt.Printf("%-30s %s\n", s.Name, s.Category)
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveFlat, "flat", false, "Print one flat list, most general tier first")
	rootCmd.AddCommand(resolveCmd)
}
