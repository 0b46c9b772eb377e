package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/app"
)

// missionCmd represents the mission command group
var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "List and switch the active mission",
	Long: `Show the configured and on-disk missions, and switch which one
merges target.

Switching to a mission that exists under mpmissions/ but is not yet in
merge_config.json adds it with the conventional target paths.

Examples:
  dzmod mission list
  dzmod mission detect
  dzmod mission switch dayzOffline.enoch
  dzmod mission switch`,
}

var missionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known missions",
	Args:  cobra.NoArgs,
	RunE:  runMissionList,
}

var missionDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Scan mpmissions and configure the missions found there",
	Long: `Scan the mpmissions directory and add every mission not yet in
merge_config.json, using the conventional target paths.`,
	Args: cobra.NoArgs,
	RunE: runMissionDetect,
}

var missionSwitchCmd = &cobra.Command{
	Use:   "switch [mission]",
	Short: "Set the active mission",
	Long: `Set the active mission. Without an argument the known missions are
offered interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMissionSwitch,
}

func init() {
	missionCmd.AddCommand(missionListCmd)
	missionCmd.AddCommand(missionDetectCmd)
	missionCmd.AddCommand(missionSwitchCmd)
}

func runMissionDetect(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	added, err := app.ConfigureDetectedMissions(cmd.Context(), missionOptions(env))
	if err != nil {
		return err
	}
	if len(added) == 0 {
		printInfo("No new missions found")
		return nil
	}
	for _, name := range added {
		printSuccess(fmt.Sprintf("Configured %s", name))
	}
	return nil
}

func runMissionList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	result, err := app.ListMissions(cmd.Context(), missionOptions(env))
	if err != nil {
		return err
	}
	if len(result.Missions) == 0 {
		printInfo("No missions found")
		return nil
	}

	for _, m := range result.Missions {
		marker := " "
		if m.Active {
			marker = "*"
		}
		line := fmt.Sprintf("%s %s", marker, m.Name)
		switch {
		case !m.OnDisk:
			line += " (configured, not on disk)"
		case !m.Configured:
			line += " (on disk, not configured)"
		}
		printInfo(line)
	}
	printInfo("")
	printInfo("* = active mission")
	return nil
}

func runMissionSwitch(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	opts := missionOptions(env)

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		listed, err := app.ListMissions(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if len(listed.Missions) == 0 {
			return fmt.Errorf("no missions found to switch to")
		}
		names := make([]string, 0, len(listed.Missions))
		for _, m := range listed.Missions {
			names = append(names, m.Name)
		}
		name, err = promptSelectMission(names, env.Config.ActiveMission)
		if err != nil {
			return err
		}
	}

	if err := app.SwitchMission(cmd.Context(), opts, name); err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Active mission is now %s", name))
	return nil
}

func missionOptions(env *cliEnv) app.MissionOptions {
	return app.MissionOptions{
		Config:     env.Config,
		ConfigPath: env.ConfigPath,
		ServerDir:  env.ServerDir,
	}
}
