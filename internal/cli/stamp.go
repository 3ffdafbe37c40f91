package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidoh-dev/licstamp/internal/engine"
)

var (
	stampForce  bool
	stampDryRun bool
)

var stampCmd = &cobra.Command{
	Use:   "stamp [paths...]",
	Short: "Insert license headers into files",
	Long: `Stamp the license header into every recognized file under the current
directory, or into the explicitly listed files.

The header is never deduplicated: stamping a file that already carries a
header inserts a second one. Without --force the stamped copy is written to
<path>.new and the original is untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, cwd, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.StampRequest{
			Root:   cwd,
			Paths:  args,
			Force:  stampForce || cfg.Force,
			DryRun: stampDryRun,
		}

		result, err := eng.Stamp(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, f := range result.Files {
			switch f.Status {
			case engine.StatusFailed:
				PrintError(fmt.Sprintf("%s: %s", f.Path, f.Err))
			case engine.StatusNoMarker:
				PrintWarning(fmt.Sprintf("%s: no insertion point found", f.Path))
			case engine.StatusUnknown:
				PrintDim(fmt.Sprintf("%s: unrecognized type, skipped", f.Path))
			}
		}

		if stampDryRun {
			PrintInfo(fmt.Sprintf("Would stamp %s", PrintCount(result.Stamped, "file", "files")))
			return nil
		}

		PrintSuccess(fmt.Sprintf("Stamped %s", PrintCount(result.Stamped, "file", "files")))
		if result.Failed > 0 {
			return fmt.Errorf("%s could not be stamped", PrintCount(result.Failed, "file", "files"))
		}
		return nil
	},
}

func init() {
	stampCmd.Flags().BoolVarP(&stampForce, "force", "f", false, "Replace files in place instead of writing .new siblings")
	stampCmd.Flags().BoolVar(&stampDryRun, "dry-run", false, "Show what would be stamped without writing anything")
}
