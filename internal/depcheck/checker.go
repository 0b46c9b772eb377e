package depcheck

import (
	"github.com/tacogips/dzmod/internal/debug"
	"github.com/tacogips/dzmod/internal/loadorder"
	"github.com/tacogips/dzmod/internal/mod"
)

// Report holds the dependency situation of one mod.
type Report struct {
	// Declared is the full declared-dependency list, in declaration order.
	Declared []string
	// Missing is the subset of Declared not found in the reference set,
	// in declaration order.
	Missing []string
}

// Options controls which reference set declared names are checked against.
type Options struct {
	// AgainstLoadOrder switches the reference set from the full inventory
	// to the active load-order list. A mod can be installed on disk but
	// not active; hold the default (inventory) to answer "is it on the
	// server at all", set this to answer "will it actually load".
	AgainstLoadOrder bool
	// LoadOrder is the active list, required when AgainstLoadOrder is set.
	LoadOrder *loadorder.List
}

// Check resolves every mod's declared dependencies against the reference
// set. Names are matched case-insensitively with the @ prefix normalized
// away. Mods with no descriptor or no dependency array yield an empty
// report. Presence only; no version or network validation.
func Check(inv *mod.Inventory, opts Options) map[string]Report {
	installed := referenceSet(inv, opts)

	reports := make(map[string]Report, len(inv.Mods))
	for i := range inv.Mods {
		m := &inv.Mods[i]
		report := Report{Declared: append([]string(nil), m.Dependencies...)}
		for _, dep := range m.Dependencies {
			if !installed[mod.NormalizeName(dep)] {
				report.Missing = append(report.Missing, dep)
			}
		}
		reports[m.Name] = report
	}

	debug.Debug("[depcheck] checked %d mod(s) against %d reference name(s)", len(reports), len(installed))
	return reports
}

// referenceSet builds the normalized membership set per Options.
func referenceSet(inv *mod.Inventory, opts Options) map[string]bool {
	set := map[string]bool{}
	if opts.AgainstLoadOrder {
		if opts.LoadOrder != nil {
			for _, name := range opts.LoadOrder.Names() {
				set[mod.NormalizeName(name)] = true
			}
		}
		return set
	}
	for i := range inv.Mods {
		set[mod.NormalizeName(inv.Mods[i].Name)] = true
	}
	return set
}
