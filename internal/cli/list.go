package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davidoh-dev/licstamp/internal/annotate"
	"github.com/davidoh-dev/licstamp/internal/config"
	"github.com/davidoh-dev/licstamp/internal/walker"
)

// listEntry is one row of list output.
type listEntry struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	Insertion string `json:"insertion"`
}

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List the files a stamping run would touch",
	Long: `List every file under the current directory (or among the listed paths)
whose type is recognized, with its detected kind and insertion point.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		path := cfgPath
		if path == "" {
			path = filepath.Join(cwd, config.DefaultFileName)
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		files := args
		if len(files) == 0 {
			files, err = walker.Walk(cwd, cfg.Exclude)
			if err != nil {
				return err
			}
		}

		var entries []listEntry
		for _, f := range files {
			kind := annotate.Classify(f)
			if kind == annotate.Unknown {
				continue
			}
			insertion := "top of file"
			if annotate.PlacementFor(kind) == annotate.PlaceAfterMarker {
				insertion = "after marker"
			}
			entries = append(entries, listEntry{Path: f, Kind: kind.String(), Insertion: insertion})
		}

		if jsonOutput {
			return outputJSON(entries)
		}

		if len(entries) == 0 {
			PrintInfo("No stampable files found.")
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Path, e.Kind, e.Insertion})
		}
		PrintTable([]string{"PATH", "KIND", "INSERTION"}, rows)
		return nil
	},
}
