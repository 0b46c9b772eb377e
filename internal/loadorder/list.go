package loadorder

import "fmt"

// List is the ordered mod-activation sequence. Order is load-precedence
// significant; names are unique. All mutations preserve uniqueness.
type List struct {
	names []string
}

// NewList builds a list holding the given names verbatim. The literal
// sequence is preserved, duplicates included: the config file is shared
// external state and may have been edited outside this tool, and duplicate
// detection re-derives from what was actually parsed. Mutations through
// Append never introduce duplicates.
func NewList(names []string) *List {
	l := &List{names: make([]string, len(names))}
	copy(l.names, names)
	return l
}

// Names returns a copy of the ordered names.
func (l *List) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.names)
}

// Contains reports whether name is present (case-sensitive exact match).
func (l *List) Contains(name string) bool {
	return l.indexOf(name) >= 0
}

// Append adds name at the end unless it is already present. Returns true
// when the list changed.
func (l *List) Append(name string) bool {
	if name == "" || l.Contains(name) {
		return false
	}
	l.names = append(l.names, name)
	return true
}

// Remove deletes name from the list. Returns true when the list changed.
func (l *List) Remove(name string) bool {
	i := l.indexOf(name)
	if i < 0 {
		return false
	}
	l.names = append(l.names[:i], l.names[i+1:]...)
	return true
}

// MoveTo moves the entry at index from to index to, shifting the entries
// between them.
func (l *List) MoveTo(from, to int) error {
	if from < 0 || from >= len(l.names) {
		return fmt.Errorf("load order: source position %d out of range [0,%d)", from, len(l.names))
	}
	if to < 0 || to >= len(l.names) {
		return fmt.Errorf("load order: target position %d out of range [0,%d)", to, len(l.names))
	}
	if from == to {
		return nil
	}
	name := l.names[from]
	l.names = append(l.names[:from], l.names[from+1:]...)
	rest := append([]string{name}, l.names[to:]...)
	l.names = append(l.names[:to], rest...)
	return nil
}

// SwapAdjacent exchanges the entries at index i and i+1.
func (l *List) SwapAdjacent(i int) error {
	if i < 0 || i+1 >= len(l.names) {
		return fmt.Errorf("load order: cannot swap positions %d and %d in list of %d", i, i+1, len(l.names))
	}
	l.names[i], l.names[i+1] = l.names[i+1], l.names[i]
	return nil
}

// IndexOf returns the position of name, or -1 when absent.
func (l *List) IndexOf(name string) int {
	return l.indexOf(name)
}

func (l *List) indexOf(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return -1
}
