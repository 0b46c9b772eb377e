package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
)

// depsCmd represents the deps command
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check declared mod dependencies",
	Long: `Check every installed mod's declared dependencies (from mod.cpp)
against what is installed.

By default a dependency counts as satisfied when the mod exists on disk.
With --load-order it must also be in the server's load order, which
answers whether the dependency will actually load at server start.

Exits non-zero when any dependency is missing.

Examples:
  dzmod deps
  dzmod deps --load-order`,
	Args: cobra.NoArgs,
	RunE: runDeps,
}

// Deps command flags
var depsAgainstLoadOrder bool

func init() {
	depsCmd.Flags().BoolVar(&depsAgainstLoadOrder, FlagLoadOrder, false, DescLoadOrder)
}

func runDeps(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := app.CheckDeps(cmd.Context(), app.CheckDepsOptions{
		Config:           env.Config,
		ServerDir:        env.ServerDir,
		LoadOrderPath:    env.LoadOrderPath,
		AgainstLoadOrder: depsAgainstLoadOrder,
	})
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	missing := 0
	for _, name := range result.ModNames {
		report := result.Reports[name]
		if len(report.Declared) == 0 {
			continue
		}
		if len(report.Missing) == 0 {
			printSuccess(fmt.Sprintf("%s: %s", name, strings.Join(report.Declared, ", ")))
			continue
		}
		missing += len(report.Missing)
		printErrorMsg(fmt.Sprintf("%s: missing %s", name, strings.Join(report.Missing, ", ")))
	}

	if !result.Satisfied {
		return fmt.Errorf("%d missing dependency(ies)", missing)
	}
	printSuccess("All declared dependencies satisfied")
	return nil
}
