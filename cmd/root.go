package cmd

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/glennballman/Community-Canvas-sub001/api"
	"github.com/glennballman/Community-Canvas-sub001/internal/ingest"
	"github.com/glennballman/Community-Canvas-sub001/internal/refdata"
)

var (
	configPath string
	dataDir    string
)

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Community Canvas: regional reference-data resolution engine",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "canvas.hcl", "Configuration file, relative to the data directory")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", ".", "Directory holding configuration and dataset files")
}

// loadSnapshot builds the full engine state for a one-shot command.
func loadSnapshot() (*refdata.Snapshot, error) {
	fsys := osfs.New(dataDir)

	cfg, err := api.Load(fsys, configPath)
	if err != nil {
		return nil, err
	}

	return ingest.Build(cfg, fsys)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
