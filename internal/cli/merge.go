package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
	"github.com/tacogips/dzmod/internal/mod"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge mod XML fragments into the mission files",
	Long: `Merge the types/events/spawnabletypes XML shipped by installed mods
into the mission's files.

Mods fold in by name order, so reruns resolve identical the same way.
When backups are enabled in merge_config.json, every mission file is
copied aside before it is touched. Rerunning a merge is safe: entries
already present are skipped, and the mission files end up unchanged.

A mod fragment that fails to parse is reported and the run continues
with the remaining files.

Examples:
  dzmod merge
  dzmod merge --mod @Banov
  dzmod merge --mission dayzOffline.enoch --kind types
  dzmod merge --yes`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

// Merge command flags
var (
	mergeMission string
	mergeMods    []string
	mergeKinds   []string
	mergeYes     bool
)

func init() {
	mergeCmd.Flags().StringVar(&mergeMission, FlagMission, "", DescMission)
	mergeCmd.Flags().StringArrayVar(&mergeMods, FlagMod, nil, DescMod)
	mergeCmd.Flags().StringArrayVar(&mergeKinds, FlagKind, nil, DescKind)
	mergeCmd.Flags().BoolVarP(&mergeYes, FlagYes, "y", false, DescYes)
}

func runMerge(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	kinds, err := parseKinds(mergeKinds)
	if err != nil {
		return err
	}

	mission := mergeMission
	if mission == "" {
		mission = env.Config.ActiveMission
	}

	if !mergeYes {
		confirmed, err := promptConfirmMerge(mission, len(mergeMods))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfo("Merge cancelled")
			return nil
		}
	}

	printProgress(fmt.Sprintf("Merging into mission %s", mission))
	result, err := app.MergeAll(cmd.Context(), app.MergeOptions{
		Config:    env.Config,
		ServerDir: env.ServerDir,
		Mission:   mergeMission,
		ModNames:  mergeMods,
		Kinds:     kinds,
	})
	if result != nil {
		printWarnings(result.Warnings)
		printMerges(result)
	}
	if err != nil {
		return err
	}

	printSeparator()
	if result.Failed > 0 {
		return fmt.Errorf("%d merge(s) failed", result.Failed)
	}
	printSuccess(fmt.Sprintf("Merged %d entry(ies), skipped %d", result.Added, result.Skipped))
	return nil
}

func printMerges(result *app.MergeResult) {
	for _, m := range result.Merges {
		if m.Err != nil {
			printErrorMsg(fmt.Sprintf("%s %s: %v", m.ModName, m.Kind, m.Err))
			continue
		}
		printInfo(fmt.Sprintf("%s %s: %d added, %d skipped -> %s", m.ModName, m.Kind, m.Added, m.Skipped, m.Target))
		if m.BackupPath != "" {
			printInfo(fmt.Sprintf("    backup: %s", m.BackupPath))
		}
	}
}

// parseKinds maps --kind values onto fragment kinds.
func parseKinds(values []string) ([]mod.FragmentKind, error) {
	var kinds []mod.FragmentKind
	for _, v := range values {
		kind := mod.FragmentKind(v)
		valid := false
		for _, k := range mod.FragmentKinds() {
			if kind == k {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("unknown fragment kind %q (valid: types, events, spawnabletypes)", v)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func mergeConfirmMessage(mission string, modCount int) string {
	if modCount > 0 {
		return fmt.Sprintf("Merge %d mod(s) into mission %s?", modCount, mission)
	}
	return fmt.Sprintf("Merge all installed mods into mission %s?", mission)
}
