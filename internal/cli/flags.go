package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagServerDir    = "server-dir"
	FlagConfig       = "config"
	FlagServerConfig = "server-config"
	FlagMission      = "mission"
	FlagMod          = "mod"
	FlagKind         = "kind"
	FlagLoadOrder    = "load-order"
	FlagYes          = "yes"
	FlagNoColor      = "no-color"
	FlagQuiet        = "quiet"
	FlagDebug        = "debug"

	// Flag descriptions
	DescServerDir    = "Server installation directory"
	DescConfig       = "Path to merge_config.json"
	DescServerConfig = "Path to the server config file holding the mods= line"
	DescMission      = "Mission to merge into (defaults to the active mission)"
	DescMod          = "Restrict to the named mod (repeatable)"
	DescKind         = "Restrict to a fragment kind: types, events, spawnabletypes (repeatable)"
	DescLoadOrder    = "Check dependencies against the load order instead of everything installed"
	DescYes          = "Skip the confirmation prompt"
	DescNoColor      = "Disable colored output"
	DescQuiet        = "Suppress non-error output"
	DescDebug        = "Enable debug logging"
)
