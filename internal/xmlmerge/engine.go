package xmlmerge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tacogips/dzmod/internal/debug"
	"github.com/tacogips/dzmod/internal/mod"
)

// Schema describes the per-kind document shape: the expected root tag and
// how entries inside it are keyed.
type Schema struct {
	RootTag  string
	EntryTag string
	KeyAttr  string
}

// SchemaFor returns the document schema for a fragment kind.
func SchemaFor(kind mod.FragmentKind) (Schema, error) {
	switch kind {
	case mod.FragmentTypes:
		return Schema{RootTag: "types", EntryTag: "type", KeyAttr: "name"}, nil
	case mod.FragmentEvents:
		return Schema{RootTag: "eventposdef", EntryTag: "event", KeyAttr: "name"}, nil
	case mod.FragmentSpawnableTypes:
		return Schema{RootTag: "spawnabletypes", EntryTag: "type", KeyAttr: "name"}, nil
	}
	return Schema{}, fmt.Errorf("unknown fragment kind %q", kind)
}

// Policy holds the merge rules from configuration.
type Policy struct {
	// SkipVanillaDuplicates refuses to merge entries keyed by a base-game
	// classname.
	SkipVanillaDuplicates bool
	// OverwriteExisting replaces target entries that share a key with a
	// source entry. When false the target entry wins.
	OverwriteExisting bool
	// PreserveComments keeps comment nodes when the target is rewritten.
	PreserveComments bool
}

// Options configures an Engine.
type Options struct {
	// BackupEnabled copies the target aside before mutating it.
	BackupEnabled bool
	// BackupDir is where backup copies are written.
	BackupDir string
}

// Result reports what one merge did.
type Result struct {
	// Added counts source entries written into the target, including
	// overwrites that changed an existing entry.
	Added int
	// Skipped counts source entries left out: key already present under
	// the keep policy, vanilla classnames, or overwrites that would have
	// replaced an entry with an identical copy.
	Skipped int
	// BackupPath is the backup copy taken before mutation, if any.
	BackupPath string
}

// mergeState tracks how far a merge progressed, for debug output and so a
// failure message can say what had already happened to the target.
type mergeState int

const (
	stateIdle mergeState = iota
	stateBackupTaken
	stateMerged
	stateWritten
)

func (s mergeState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateBackupTaken:
		return "backup-taken"
	case stateMerged:
		return "merged"
	case stateWritten:
		return "written"
	}
	return "unknown"
}

// Engine merges mod fragment files into mission files.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Merge folds the entries of sourcePath into targetPath according to the
// fragment kind's schema and the policy. The target is only ever replaced
// whole via rename; any error before that leaves it byte-identical.
func (e *Engine) Merge(sourcePath, targetPath string, kind mod.FragmentKind, policy Policy) (Result, error) {
	var res Result
	state := stateIdle

	schema, err := SchemaFor(kind)
	if err != nil {
		return res, err
	}
	debug.Debugf("merge %s -> %s (%s)", sourcePath, targetPath, kind)

	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return res, NewMergeError(SourceMissing, sourcePath, "source file not found", err)
		}
		return res, NewMergeError(SourceMissing, sourcePath, "failed to read source file", err)
	}

	targetDir := filepath.Dir(targetPath)
	if info, err := os.Stat(targetDir); err != nil || !info.IsDir() {
		return res, NewMergeError(TargetDirMissing, targetDir, "mission directory not found", err)
	}

	lock, err := lockTarget(targetPath)
	if err != nil {
		return res, NewMergeError(LockFailed, targetPath, "failed to lock target file", err)
	}
	defer lock.release()

	targetExists := true
	if _, err := os.Stat(targetPath); os.IsNotExist(err) {
		targetExists = false
	}

	if targetExists && e.opts.BackupEnabled {
		backupPath, err := backupFile(targetPath, e.opts.BackupDir)
		if err != nil {
			return res, NewMergeError(BackupFailed, targetPath, "failed to back up target file", err)
		}
		res.BackupPath = backupPath
		state = stateBackupTaken
		debug.Debugf("state %s: %s", state, backupPath)
	}

	source, err := Parse(sourceData)
	if err != nil {
		return res, NewMergeError(SourceMalformed, sourcePath, "failed to parse source file", err)
	}
	if source.Root == nil || source.Root.Name != schema.RootTag {
		return res, NewMergeError(SourceMalformed, sourcePath,
			fmt.Sprintf("expected root element <%s>", schema.RootTag), nil)
	}

	var target *Document
	if targetExists {
		targetData, err := os.ReadFile(targetPath)
		if err != nil {
			return res, NewMergeError(TargetMalformed, targetPath, "failed to read target file", err)
		}
		target, err = Parse(targetData)
		if err != nil {
			return res, NewMergeError(TargetMalformed, targetPath, "failed to parse target file", err)
		}
		if target.Root == nil || target.Root.Name != schema.RootTag {
			return res, NewMergeError(TargetMalformed, targetPath,
				fmt.Sprintf("expected root element <%s>", schema.RootTag), nil)
		}
	} else {
		target = NewDocument(schema.RootTag)
	}

	added, skipped := mergeEntries(source.Root, target.Root, schema, policy)
	res.Added = added
	res.Skipped = skipped
	state = stateMerged
	debug.Debugf("state %s: %d added, %d skipped", state, added, skipped)

	if err := writeFileAtomic(targetPath, target.Serialize(policy.PreserveComments)); err != nil {
		return res, NewMergeError(WriteFailed, targetPath, "failed to write target file", err)
	}
	state = stateWritten
	debug.Debugf("state %s: %s", state, targetPath)
	return res, nil
}

// mergeEntries folds the keyed entry children of sourceRoot into
// targetRoot in source order.
func mergeEntries(sourceRoot, targetRoot *Element, schema Schema, policy Policy) (added, skipped int) {
	existing := map[string]int{}
	for i, c := range targetRoot.Children {
		el, ok := c.(*Element)
		if !ok || el.Name != schema.EntryTag {
			continue
		}
		if key := el.Attr(schema.KeyAttr); key != "" {
			if _, seen := existing[key]; !seen {
				existing[key] = i
			}
		}
	}

	for _, entry := range sourceRoot.Elements(schema.EntryTag) {
		key := entry.Attr(schema.KeyAttr)
		if key == "" {
			continue
		}
		if policy.SkipVanillaDuplicates && IsVanillaName(key) {
			debug.Debugf("skip vanilla %s %q", schema.EntryTag, key)
			skipped++
			continue
		}
		idx, present := existing[key]
		if present {
			if !policy.OverwriteExisting {
				skipped++
				continue
			}
			if nodesEqual(targetRoot.Children[idx], entry) {
				skipped++
				continue
			}
			targetRoot.Children[idx] = entry
			added++
			continue
		}
		existing[key] = appendEntry(targetRoot, entry)
		added++
	}
	return added, skipped
}

// appendEntry inserts an entry near the end of the root's children,
// before any trailing text so the closing tag keeps its own line. Returns
// the index the entry landed at.
func appendEntry(root *Element, entry *Element) int {
	last := -1
	for i, c := range root.Children {
		if _, ok := c.(*Element); ok {
			last = i
		}
	}

	sep := "\n    "
	if last > 0 {
		if t, ok := root.Children[last-1].(*Text); ok {
			sep = t.Data
		}
	}

	insert := []Node{&Text{Data: sep}, entry}
	at := last + 1
	if at == len(root.Children) {
		// Nothing trails the insertion point, so give the closing tag
		// its own line.
		insert = append(insert, &Text{Data: "\n"})
	}
	root.Children = append(root.Children[:at], append(insert, root.Children[at:]...)...)
	return at + 1
}

// writeFileAtomic writes data to a temp file in the target's directory
// and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
