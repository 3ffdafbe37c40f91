package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidoh-dev/licstamp/internal/engine"
)

var diffCmd = &cobra.Command{
	Use:   "diff [paths...]",
	Short: "Preview the changes stamping would make",
	Long: `Render the stamped version of each file in memory and print a unified diff
against the current content. Nothing is written to disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, cwd, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.DiffRequest{
			Root:  cwd,
			Paths: args,
		}

		result, err := eng.Diff(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Diffs) == 0 {
			PrintInfo("No changes.")
			return nil
		}

		for _, d := range result.Diffs {
			PrintPatch(d.Patch)
			fmt.Println()
		}
		PrintInfo(fmt.Sprintf("Would change %s", PrintCount(len(result.Diffs), "file", "files")))
		return nil
	},
}
