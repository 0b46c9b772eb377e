package mod

import "strings"

// NamePrefix is the directory name prefix that marks a mod folder.
const NamePrefix = "@"

// FragmentKind identifies one of the three XML game-data categories a mod
// may contribute to a mission.
type FragmentKind string

const (
	// FragmentTypes holds item definitions (types.xml).
	FragmentTypes FragmentKind = "types"
	// FragmentEvents holds event definitions (events.xml / cfgeventspawns.xml).
	FragmentEvents FragmentKind = "events"
	// FragmentSpawnableTypes holds spawn definitions (spawnabletypes.xml).
	FragmentSpawnableTypes FragmentKind = "spawnabletypes"
)

// FragmentKinds lists all fragment kinds in their canonical order.
func FragmentKinds() []FragmentKind {
	return []FragmentKind{FragmentTypes, FragmentEvents, FragmentSpawnableTypes}
}

// Mod is an immutable snapshot of one installed mod, recomputed from disk on
// every inventory scan and never persisted.
type Mod struct {
	// Name is the canonical mod name including the @ prefix, case preserved.
	Name string
	// DisplayName is the optional human-readable name from the descriptor.
	DisplayName string
	// Path is the absolute path of the mod directory.
	Path string
	// ContentFiles holds the base filenames of all packaged-content (.pbo)
	// archives found anywhere under the mod directory.
	ContentFiles []string
	// KeyFiles holds the base filenames of signing-key (.bikey) files from
	// the mod's key directory.
	KeyFiles []string
	// Dependencies is the declared-dependency list from the descriptor,
	// empty when no descriptor or no dependency array exists.
	Dependencies []string
	// Fragments maps each fragment kind to the first matching XML file path
	// found under the mod tree. Absent kinds have no entry.
	Fragments map[FragmentKind]string
}

// NormalizeName maps a mod name to its comparison form: the @ prefix is
// stripped and the remainder lowercased. Declared dependencies and installed
// names are matched through this form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, NamePrefix))
}

// EnsurePrefix returns name with the @ prefix added when missing.
func EnsurePrefix(name string) string {
	if !strings.HasPrefix(name, NamePrefix) {
		return NamePrefix + name
	}
	return name
}
