package loadorder

import (
	"fmt"
	"os"
	"strings"

	"github.com/tacogips/dzmod/internal/debug"
)

// The load order lives in a single line of the server config file:
//
//	mods="mods/@CF\;mods/@Banov"
//
// The delimiter is an escaped semicolon, each entry carries the mods/
// directory prefix, and the whole value is quoted. Every other line of the
// config file belongs to the server tooling and must round-trip untouched.
const (
	fieldKey    = "mods"
	fieldPrefix = fieldKey + "="
	entryPrefix = "mods/"
	delimiter   = ";"
	escapedDelm = `\` + delimiter
)

// Store reads and writes the load-order field of a server config file. The
// file is shared external mutable state: every operation re-reads it, and
// writes go through a temp file and rename so a crash never leaves a
// half-written config.
type Store struct {
	// Path is the server config file location.
	Path string
}

// NewStore creates a Store for the given config file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load parses the load-order field. A missing file or absent field yields
// an empty list, not an error.
func (s *Store) Load() (*List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			debug.Debug("[loadorder] %s not found, empty load order", s.Path)
			return NewList(nil), nil
		}
		return nil, fmt.Errorf("failed to read server config %s: %w", s.Path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, fieldPrefix) {
			continue
		}
		return parseFieldValue(strings.TrimPrefix(line, fieldPrefix)), nil
	}

	debug.Debug("[loadorder] no %s field in %s, empty load order", fieldKey, s.Path)
	return NewList(nil), nil
}

// Save writes the list back as the load-order field. Only the single
// matching line is replaced; a missing field is appended and a missing
// file is created. The rewrite is atomic.
func (s *Store) Save(list *List) error {
	line := formatFieldLine(list)

	data, err := os.ReadFile(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read server config %s: %w", s.Path, err)
	}

	var text string
	switch {
	case err != nil:
		text = line + "\n"
	default:
		text = replaceFieldLine(string(data), line)
	}

	if err := writeFileAtomic(s.Path, []byte(text)); err != nil {
		return fmt.Errorf("failed to write server config %s: %w", s.Path, err)
	}
	debug.Debug("[loadorder] saved %d entries to %s", list.Len(), s.Path)
	return nil
}

// parseFieldValue decodes the raw field value: quotes stripped, delimiter
// un-escaped, entries split, the directory prefix removed, empty segments
// dropped.
func parseFieldValue(raw string) *List {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"`)
	raw = strings.ReplaceAll(raw, escapedDelm, delimiter)

	var names []string
	for _, part := range strings.Split(raw, delimiter) {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, entryPrefix)
		if part != "" {
			names = append(names, part)
		}
	}
	return NewList(names)
}

// formatFieldLine is the exact inverse of parseFieldValue.
func formatFieldLine(list *List) string {
	names := list.Names()
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, entryPrefix+n)
	}
	return fieldPrefix + `"` + strings.Join(parts, escapedDelm) + `"`
}

// replaceFieldLine swaps the first load-order line for the new one,
// leaving every other line byte-for-byte intact. Without an existing field
// the line is appended.
func replaceFieldLine(text, line string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if strings.HasPrefix(strings.TrimRight(l, "\r"), fieldPrefix) {
			lines[i] = line
			return strings.Join(lines, "\n")
		}
	}
	return strings.TrimRight(text, "\n") + "\n" + line + "\n"
}

// writeFileAtomic writes via a temp file and rename so an interrupted save
// leaves the previous config intact.
func writeFileAtomic(path string, content []byte) error {
	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	_, werr := f.Write(content)
	cerr := f.Close()
	if werr != nil {
		_ = os.Remove(tempFile)
		return werr
	}
	if cerr != nil {
		_ = os.Remove(tempFile)
		return cerr
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return err
	}
	return nil
}
