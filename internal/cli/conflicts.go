package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
)

// conflictsCmd represents the conflicts command
var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect file conflicts between installed mods",
	Long: `Report mods that ship the same pbo or signing key filename, and
duplicated entries in the load order.

Two mods providing the same packaged filename will shadow each other at
server start; the report names every colliding filename and its owners.

Exits non-zero when any conflict is found, so the check can gate a
server restart script.

Examples:
  dzmod conflicts
  dzmod conflicts -C ~/serverfiles`,
	Args: cobra.NoArgs,
	RunE: runConflicts,
}

func runConflicts(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := app.CheckConflicts(cmd.Context(), app.CheckConflictsOptions{
		Config:        env.Config,
		ServerDir:     env.ServerDir,
		LoadOrderPath: env.LoadOrderPath,
	})
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	report := result.Report
	if report.Empty() {
		printSuccess("No conflicts found")
		return nil
	}

	if len(report.ContentConflicts) > 0 {
		printHeader("Content conflicts")
		for _, f := range report.ContentConflicts {
			printErrorMsg(fmt.Sprintf("%s provided by %s", f.Filename, strings.Join(f.Mods, ", ")))
		}
	}
	if len(report.KeyConflicts) > 0 {
		printHeader("Key conflicts")
		for _, f := range report.KeyConflicts {
			printErrorMsg(fmt.Sprintf("%s provided by %s", f.Filename, strings.Join(f.Mods, ", ")))
		}
	}
	if len(report.DuplicateEntries) > 0 {
		printHeader("Duplicate load-order entries")
		for _, d := range report.DuplicateEntries {
			printErrorMsg(fmt.Sprintf("%s listed %d times", d.Name, d.Count))
		}
	}

	return fmt.Errorf("found %d conflict(s)",
		len(report.ContentConflicts)+len(report.KeyConflicts)+len(report.DuplicateEntries))
}
