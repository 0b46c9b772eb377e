package conflict

import (
	"sort"

	"github.com/tacogips/dzmod/internal/debug"
	"github.com/tacogips/dzmod/internal/loadorder"
	"github.com/tacogips/dzmod/internal/mod"
)

// Finding is one filename claimed by two or more mods.
type Finding struct {
	// Filename is the shared base filename.
	Filename string
	// Mods are the canonical names of the claiming mods, sorted ascending.
	Mods []string
}

// DuplicateEntry is a load-order name occurring more than once.
type DuplicateEntry struct {
	// Name is the repeated entry.
	Name string
	// Count is how many times it occurs.
	Count int
}

// Report holds all collision findings from one detection pass. Finding
// slices are sorted by filename then mod name, duplicates by name, so the
// report is deterministic for identical input.
type Report struct {
	// ContentConflicts are packaged-content filename collisions.
	ContentConflicts []Finding
	// KeyConflicts are signing-key filename collisions.
	KeyConflicts []Finding
	// DuplicateEntries are load-order names appearing more than once.
	DuplicateEntries []DuplicateEntry
}

// Empty reports whether no findings of any category exist.
func (r *Report) Empty() bool {
	return len(r.ContentConflicts) == 0 &&
		len(r.KeyConflicts) == 0 &&
		len(r.DuplicateEntries) == 0
}

// Detect cross-references the catalog and load order for collisions. The
// load-order duplicates are re-derived from the literal parsed sequence:
// append-if-absent should make them impossible, but the config file may
// have been edited outside this tool. Read-only, no side effects.
func Detect(inv *mod.Inventory, list *loadorder.List) *Report {
	report := &Report{
		ContentConflicts: collideFilenames(inv, func(m *mod.Mod) []string { return m.ContentFiles }),
		KeyConflicts:     collideFilenames(inv, func(m *mod.Mod) []string { return m.KeyFiles }),
		DuplicateEntries: duplicateEntries(list),
	}
	debug.Debug("[conflict] %d content, %d key, %d duplicate finding(s)",
		len(report.ContentConflicts), len(report.KeyConflicts), len(report.DuplicateEntries))
	return report
}

// collideFilenames maps each filename to its owning mods and keeps the
// ones with two or more owners.
func collideFilenames(inv *mod.Inventory, files func(*mod.Mod) []string) []Finding {
	owners := map[string][]string{}
	for i := range inv.Mods {
		m := &inv.Mods[i]
		seen := map[string]bool{}
		for _, f := range files(m) {
			// The same filename twice inside one mod is not a cross-mod
			// collision.
			if seen[f] {
				continue
			}
			seen[f] = true
			owners[f] = append(owners[f], m.Name)
		}
	}

	var findings []Finding
	for filename, mods := range owners {
		if len(mods) < 2 {
			continue
		}
		sort.Strings(mods)
		findings = append(findings, Finding{Filename: filename, Mods: mods})
	}
	sort.Slice(findings, func(i, j int) bool {
		return findings[i].Filename < findings[j].Filename
	})
	return findings
}

// duplicateEntries counts repeated names in the literal load-order
// sequence.
func duplicateEntries(list *loadorder.List) []DuplicateEntry {
	if list == nil {
		return nil
	}
	counts := map[string]int{}
	for _, name := range list.Names() {
		counts[name]++
	}

	var dups []DuplicateEntry
	for name, count := range counts {
		if count > 1 {
			dups = append(dups, DuplicateEntry{Name: name, Count: count})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		return dups[i].Name < dups[j].Name
	})
	return dups
}
