package loadorder

import (
	"reflect"
	"testing"
)

// assertUnique fails when any name appears more than once.
func assertUnique(t *testing.T, l *List) {
	t.Helper()
	seen := map[string]bool{}
	for _, n := range l.Names() {
		if seen[n] {
			t.Fatalf("List violates uniqueness: %v", l.Names())
		}
		seen[n] = true
	}
}

func TestListAppendIfAbsent(t *testing.T) {
	l := NewList(nil)

	if !l.Append("@CF") {
		t.Error("Expected first append to change the list")
	}
	if l.Append("@CF") {
		t.Error("Expected repeated append to be a no-op")
	}
	// Case-sensitive exact match: different case is a different entry.
	if !l.Append("@cf") {
		t.Error("Expected different-case append to change the list")
	}
	assertUnique(t, l)
	if got := l.Names(); !reflect.DeepEqual(got, []string{"@CF", "@cf"}) {
		t.Errorf("Names = %v, want [@CF @cf]", got)
	}
}

func TestListRemove(t *testing.T) {
	l := NewList([]string{"@CF", "@Banov", "@Dabs"})

	if !l.Remove("@Banov") {
		t.Error("Expected remove of present name to change the list")
	}
	if l.Remove("@Banov") {
		t.Error("Expected remove of absent name to be a no-op")
	}
	if got := l.Names(); !reflect.DeepEqual(got, []string{"@CF", "@Dabs"}) {
		t.Errorf("Names = %v, want [@CF @Dabs]", got)
	}
}

func TestListMoveTo(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		from, to int
		want     []string
		wantErr  bool
	}{
		{
			name:    "move first to last",
			initial: []string{"a", "b", "c"},
			from:    0, to: 2,
			want: []string{"b", "c", "a"},
		},
		{
			name:    "move last to first",
			initial: []string{"a", "b", "c"},
			from:    2, to: 0,
			want: []string{"c", "a", "b"},
		},
		{
			name:    "move to same position",
			initial: []string{"a", "b"},
			from:    1, to: 1,
			want: []string{"a", "b"},
		},
		{
			name:    "source out of range",
			initial: []string{"a"},
			from:    3, to: 0,
			wantErr: true,
		},
		{
			name:    "target out of range",
			initial: []string{"a"},
			from:    0, to: 5,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList(tt.initial)
			err := l.MoveTo(tt.from, tt.to)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("MoveTo failed: %v", err)
			}
			if got := l.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names = %v, want %v", got, tt.want)
			}
			assertUnique(t, l)
		})
	}
}

func TestListSwapAdjacent(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})

	if err := l.SwapAdjacent(0); err != nil {
		t.Fatalf("SwapAdjacent failed: %v", err)
	}
	if got := l.Names(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Names = %v, want [b a c]", got)
	}
	if err := l.SwapAdjacent(2); err == nil {
		t.Error("Expected error swapping past the end")
	}
	if err := l.SwapAdjacent(-1); err == nil {
		t.Error("Expected error swapping before the start")
	}
}

func TestListUniquenessUnderMixedOperations(t *testing.T) {
	l := NewList(nil)
	ops := []func(){
		func() { l.Append("@CF") },
		func() { l.Append("@Banov") },
		func() { l.Append("@CF") },
		func() { l.Remove("@Banov") },
		func() { l.Append("@Banov") },
		func() { l.Append("@Dabs") },
		func() { _ = l.MoveTo(2, 0) },
		func() { _ = l.SwapAdjacent(0) },
		func() { l.Append("@Dabs") },
	}
	for _, op := range ops {
		op()
		assertUnique(t, l)
	}
	if l.Len() != 3 {
		t.Errorf("Len = %d, want 3 (%v)", l.Len(), l.Names())
	}
}

func TestNewListPreservesLiteralSequence(t *testing.T) {
	// An externally edited config can carry duplicates; the list must not
	// silently repair them so the conflict detector can report them.
	l := NewList([]string{"@CF", "@Banov", "@CF"})
	if got := l.Names(); !reflect.DeepEqual(got, []string{"@CF", "@Banov", "@CF"}) {
		t.Errorf("Names = %v, want literal [@CF @Banov @CF]", got)
	}
	// Append on a list already holding a duplicate still refuses to add
	// another copy.
	if l.Append("@CF") {
		t.Error("Expected append of present name to be a no-op")
	}
}
