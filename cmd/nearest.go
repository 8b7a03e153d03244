package cmd

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/glennballman/Community-Canvas-sub001/internal/proximity"
	"github.com/glennballman/Community-Canvas-sub001/internal/refdata"
)

var (
	nearestLat   float64
	nearestLon   float64
	nearestK     int
	nearestTypes []string
)

var nearestCmd = &cobra.Command{
	Use:   "nearest [dataset]",
	Short: "Rank a dataset's facilities by distance from a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		hits, err := snap.Nearest(args[0], orb.Point{nearestLon, nearestLat}, proximity.Options{
			K:     nearestK,
			Types: nearestTypes,
		})
		if err != nil {
			return err
		}

		if len(hits) == 0 {
			fmt.Println("No facilities found.")
			return nil
		}
		for i, h := range hits {
			name := "(unnamed)"
			muni := ""
			if site, ok := refdata.SiteOf(h.Record); ok {
				if site.Name != "" {
					name = site.Name
				}
				muni = site.Municipality
			}
			fmt.Printf("%2d. %-40s %-12s %8.1f km  %s\n", i+1, name, h.Record.FacilityType(), h.DistanceKm, muni)
		}
		return nil
	},
}

func init() {
	nearestCmd.Flags().Float64Var(&nearestLat, "lat", 0, "Latitude of the query point")
	nearestCmd.Flags().Float64Var(&nearestLon, "lon", 0, "Longitude of the query point")
	nearestCmd.Flags().IntVarP(&nearestK, "count", "k", proximity.DefaultK, "Maximum number of results")
	nearestCmd.Flags().StringSliceVarP(&nearestTypes, "type", "t", nil, "Restrict to facility types (repeatable)")
	_ = nearestCmd.MarkFlagRequired("lat")
	_ = nearestCmd.MarkFlagRequired("lon")
	rootCmd.AddCommand(nearestCmd)
}
