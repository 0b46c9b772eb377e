package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
)

// modsCmd represents the mods command
var modsCmd = &cobra.Command{
	Use:   "mods",
	Short: "List installed mods",
	Long: `List every mod found under the configured mod search paths.

For each mod the listing shows the packaged content and signing key
counts, the XML fragment kinds it ships, its declared dependencies, and
whether it is in the server load order.

Examples:
  dzmod mods
  dzmod mods -C ~/serverfiles`,
	Args: cobra.NoArgs,
	RunE: runMods,
}

func runMods(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := app.ListMods(cmd.Context(), app.ListModsOptions{
		Config:        env.Config,
		ServerDir:     env.ServerDir,
		LoadOrderPath: env.LoadOrderPath,
	})
	if err != nil {
		return err
	}
	printWarnings(result.Warnings)

	if len(result.Mods) == 0 {
		printInfo("No mods installed")
		return nil
	}

	printHeader(fmt.Sprintf("Installed mods (%d)", len(result.Mods)))
	for _, m := range result.Mods {
		marker := " "
		if m.Active {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, m.Name)
		if m.DisplayName != "" {
			line += fmt.Sprintf(" (%s)", m.DisplayName)
		}
		printInfo(line)
		printInfo(fmt.Sprintf("    %d pbo, %d key", m.ContentFiles, m.KeyFiles))
		if len(m.Fragments) > 0 {
			kinds := make([]string, 0, len(m.Fragments))
			for _, k := range m.Fragments {
				kinds = append(kinds, string(k))
			}
			printInfo(fmt.Sprintf("    fragments: %s", strings.Join(kinds, ", ")))
		}
		if len(m.Dependencies) > 0 {
			printInfo(fmt.Sprintf("    depends on: %s", strings.Join(m.Dependencies, ", ")))
		}
	}
	printInfo("")
	printInfo("* = in load order")
	return nil
}
