package mod

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/dzmod/internal/debug"
)

// keyDirNames are the key subdirectory names checked at the mod root, in
// order. The first existing directory wins; they are not merged.
var keyDirNames = []string{"keys", "Keys"}

// descriptorFileName is the optional mod descriptor at the mod root.
const descriptorFileName = "mod.cpp"

// fragmentFileNames maps recognized fragment filenames (lowercased) to
// their kind.
var fragmentFileNames = map[string]FragmentKind{
	"types.xml":             FragmentTypes,
	"events.xml":            FragmentEvents,
	"cfgeventspawns.xml":    FragmentEvents,
	"spawnabletypes.xml":    FragmentSpawnableTypes,
	"cfgspawnabletypes.xml": FragmentSpawnableTypes,
}

// contentExtension is the packaged-content archive extension.
const contentExtension = ".pbo"

// keyExtension is the signing-key file extension.
const keyExtension = ".bikey"

// Inventory is the result of one mods-root scan: the catalog of installed
// mods in directory traversal order, plus soft warnings for mod directories
// that could not be fully read.
type Inventory struct {
	// Mods holds the discovered mods in traversal order.
	Mods []Mod
	// Warnings holds non-fatal per-mod scan problems.
	Warnings []string
}

// Names returns the canonical names of all inventoried mods in order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Mods))
	for _, m := range inv.Mods {
		names = append(names, m.Name)
	}
	return names
}

// ByName returns the mod with the given canonical name, matched through
// NormalizeName, or nil when not inventoried.
func (inv *Inventory) ByName(name string) *Mod {
	want := NormalizeName(name)
	for i := range inv.Mods {
		if NormalizeName(inv.Mods[i].Name) == want {
			return &inv.Mods[i]
		}
	}
	return nil
}

// Scan walks the mods root and builds the inventory. Each top-level
// directory whose name starts with the @ prefix becomes one Mod. The scan
// is read-only; a mod directory that cannot be read is skipped and recorded
// as a warning.
func Scan(modsRoot string) (*Inventory, error) {
	debug.Debug("[inventory] Scanning mods root: %s", modsRoot)

	entries, err := os.ReadDir(modsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewScanError(ScanRootNotFound, modsRoot, "mods directory not found", err)
		}
		return nil, NewScanError(ScanRootUnreadable, modsRoot, "failed to read mods directory", err)
	}

	inv := &Inventory{}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), NamePrefix) {
			continue
		}

		modPath := filepath.Join(modsRoot, entry.Name())
		m, err := scanMod(entry.Name(), modPath)
		if err != nil {
			inv.Warnings = append(inv.Warnings, fmt.Sprintf("skipping %s: %v", entry.Name(), err))
			continue
		}
		inv.Mods = append(inv.Mods, *m)
	}

	debug.Debug("[inventory] Found %d mod(s), %d warning(s)", len(inv.Mods), len(inv.Warnings))
	return inv, nil
}

// scanMod builds the snapshot for a single mod directory.
func scanMod(name, modPath string) (*Mod, error) {
	m := &Mod{
		Name:      name,
		Path:      modPath,
		Fragments: map[FragmentKind]string{},
	}

	if err := collectContentAndFragments(m); err != nil {
		return nil, err
	}
	collectKeys(m)
	readDescriptor(m)

	debug.Debug("[inventory] %s: %d pbo(s), %d key(s), %d dep(s), %d fragment kind(s)",
		name, len(m.ContentFiles), len(m.KeyFiles), len(m.Dependencies), len(m.Fragments))
	return m, nil
}

// collectContentAndFragments walks the mod tree once, recording packaged
// content filenames and the first matching fragment path per kind.
func collectContentAndFragments(m *Mod) error {
	return filepath.WalkDir(m.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == m.Path {
				return err
			}
			// Unreadable subdirectory: drop its contribution, keep going.
			debug.Debug("[inventory] unreadable entry under %s: %v", m.Name, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		base := d.Name()
		if strings.EqualFold(filepath.Ext(base), contentExtension) {
			m.ContentFiles = append(m.ContentFiles, base)
			return nil
		}
		if kind, ok := fragmentFileNames[strings.ToLower(base)]; ok {
			if _, seen := m.Fragments[kind]; !seen {
				m.Fragments[kind] = path
			}
		}
		return nil
	})
}

// collectKeys records signing-key filenames from the first existing key
// subdirectory.
func collectKeys(m *Mod) {
	for _, dirName := range keyDirNames {
		keyDir := filepath.Join(m.Path, dirName)
		info, err := os.Stat(keyDir)
		if err != nil || !info.IsDir() {
			continue
		}
		entries, err := os.ReadDir(keyDir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), keyExtension) {
				m.KeyFiles = append(m.KeyFiles, e.Name())
			}
		}
		return
	}
}

// readDescriptor extracts the declared dependencies and display name from
// mod.cpp when present. A missing or malformed descriptor leaves both empty.
func readDescriptor(m *Mod) {
	data, err := os.ReadFile(filepath.Join(m.Path, descriptorFileName))
	if err != nil {
		return
	}
	desc := ScanDescriptor(data)
	m.DisplayName = desc.Name
	m.Dependencies = desc.Dependencies
}
