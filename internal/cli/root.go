package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tacogips/dzmod/internal/config"
	"github.com/tacogips/dzmod/internal/debug"
)

// Version information (set from main via build-time variables)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor      bool
	globalQuiet        bool
	globalDebug        bool
	globalServerDir    string
	globalConfigPath   string
	globalServerConfig string
)

// defaultServerConfigPath is the LinuxGSM instance config carrying the
// mods= line, relative to the server directory.
var defaultServerConfigPath = filepath.Join("lgsm", "config-lgsm", "dayzserver", "dayzserver.cfg")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dzmod",
	Short: "DayZ server mod consistency tool",
	Long: `dzmod keeps an installed DayZ server's mod state consistent.

It scans the mods directory for installed mods, manages the load order
in the LinuxGSM server config, checks declared dependencies, detects
file conflicts between mods, and merges mod-provided types/events/
spawnabletypes XML into the active mission's files.

Configuration lives in merge_config.json next to the server files; the
file is created with defaults on first use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVarP(&globalServerDir, FlagServerDir, "C", ".", DescServerDir)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)
	rootCmd.PersistentFlags().StringVar(&globalServerConfig, FlagServerConfig, "", DescServerConfig)

	// Add subcommands
	rootCmd.AddCommand(modsCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(missionCmd)
	rootCmd.AddCommand(versionCmd)
}

// cliEnv is the resolved execution environment shared by all commands.
type cliEnv struct {
	Config        *config.Config
	ConfigPath    string
	ServerDir     string
	LoadOrderPath string
}

// loadEnv resolves the server directory and loads (or creates) the
// configuration.
func loadEnv() (*cliEnv, error) {
	serverDir, err := config.ExpandPath(globalServerDir)
	if err != nil {
		return nil, err
	}

	cfgPath := globalConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(serverDir, config.DefaultFileName)
	} else if cfgPath, err = config.ExpandPath(cfgPath); err != nil {
		return nil, err
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	serverConfig := globalServerConfig
	if serverConfig == "" {
		serverConfig = filepath.Join(serverDir, defaultServerConfigPath)
	} else if serverConfig, err = config.ExpandPath(serverConfig); err != nil {
		return nil, err
	}

	debug.DebugValue("server dir", serverDir)
	debug.DebugValue("config", cfgPath)
	debug.DebugValue("server config", serverConfig)

	return &cliEnv{
		Config:        cfg,
		ConfigPath:    cfgPath,
		ServerDir:     serverDir,
		LoadOrderPath: serverConfig,
	}, nil
}

// printWarnings prints non-fatal scan warnings.
func printWarnings(warnings []string) {
	for _, w := range warnings {
		printWarning(w)
	}
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
