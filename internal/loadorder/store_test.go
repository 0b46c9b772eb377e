package loadorder

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dayzserver.cfg")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestStoreLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "many entries",
			content: "startparameters=\"-dologs\"\nmods=\"mods/@CF\\;mods/@Banov\\;mods/@DayZ-Expansion-Core\"\n",
			want:    []string{"@CF", "@Banov", "@DayZ-Expansion-Core"},
		},
		{
			name:    "single entry",
			content: "mods=\"mods/@CF\"\n",
			want:    []string{"@CF"},
		},
		{
			name:    "empty value",
			content: "mods=\"\"\n",
			want:    nil,
		},
		{
			name:    "field absent",
			content: "ip=0.0.0.0\nport=2302\n",
			want:    nil,
		},
		{
			name:    "empty segments dropped",
			content: "mods=\"mods/@CF\\;\\;mods/@Banov\"\n",
			want:    []string{"@CF", "@Banov"},
		},
		{
			name:    "unquoted value tolerated",
			content: "mods=mods/@CF\\;mods/@Banov\n",
			want:    []string{"@CF", "@Banov"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(writeConfig(t, tt.content))
			list, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			got := list.Names()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.cfg"))
	list, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("Expected empty list, got %v", list.Names())
	}
}

func TestStoreRoundTrip(t *testing.T) {
	// save(load(x)) must leave the file byte-identical when no names
	// changed, for zero, one and many entries.
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "zero entries",
			content: "ip=0.0.0.0\nmods=\"\"\nport=2302\n",
		},
		{
			name:    "one entry",
			content: "mods=\"mods/@CF\"\n",
		},
		{
			name:    "many entries among other lines",
			content: "# comment line\nip=0.0.0.0\nmods=\"mods/@CF\\;mods/@Banov\\;mods/@Dabs-Framework\"\nport=2302\nfn_restart=\"\"\n",
		},
		{
			name:    "names with dots and dashes",
			content: "mods=\"mods/@DayZ-Expansion-Core\\;mods/@RaG_BaseItems\\;mods/@mod.with.dots\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			store := NewStore(path)

			list, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if err := store.Save(list); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			after, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to re-read config: %v", err)
			}
			if string(after) != tt.content {
				t.Errorf("Round trip changed file.\n before: %q\n after:  %q", tt.content, string(after))
			}
		})
	}
}

func TestStoreSaveAppendsMissingField(t *testing.T) {
	content := "ip=0.0.0.0\nport=2302\n"
	path := writeConfig(t, content)
	store := NewStore(path)

	list := NewList([]string{"@CF"})
	if err := store.Save(list); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read config: %v", err)
	}
	want := "ip=0.0.0.0\nport=2302\nmods=\"mods/@CF\"\n"
	if string(after) != want {
		t.Errorf("Save appended wrong content.\n got:  %q\n want: %q", string(after), want)
	}
}

func TestStoreSaveCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayzserver.cfg")
	store := NewStore(path)

	if err := store.Save(NewList([]string{"@CF", "@Banov"})); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read created config: %v", err)
	}
	want := "mods=\"mods/@CF\\;mods/@Banov\"\n"
	if string(after) != want {
		t.Errorf("Created config = %q, want %q", string(after), want)
	}
}

func TestStoreSaveLeavesOtherLinesUntouched(t *testing.T) {
	content := "ip=0.0.0.0\nmods=\"mods/@CF\"\nport=2302\n"
	path := writeConfig(t, content)
	store := NewStore(path)

	list, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	list.Append("@Banov")
	if err := store.Save(list); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to re-read config: %v", err)
	}
	want := "ip=0.0.0.0\nmods=\"mods/@CF\\;mods/@Banov\"\nport=2302\n"
	if string(after) != want {
		t.Errorf("Save result = %q, want %q", string(after), want)
	}
}
