package objects

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/KostasZigo/looseobj/internal/constants"
	"github.com/KostasZigo/looseobj/utils"
)

// FileMode is the ASCII octal mode string stored in a tree record.
type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeSymlink     FileMode = "120000" // Symbolic link
	ModeDirectory   FileMode = "40000"  // Directory (tree)
	ModeSubmodule   FileMode = "160000" // Git submodule

	// modeDirectoryPadded is the zero-padded directory spelling some writers emit.
	modeDirectoryPadded FileMode = "040000"
)

// EntryKind is what a tree entry points at, derived from its mode.
type EntryKind int

const (
	KindUnknown EntryKind = iota
	KindRegularFile
	KindExecutableFile
	KindSymlink
	KindSubtree
	KindSubmodule
)

func (k EntryKind) String() string {
	switch k {
	case KindRegularFile, KindExecutableFile:
		return "blob"
	case KindSymlink:
		return "symlink"
	case KindSubtree:
		return "tree"
	case KindSubmodule:
		return "submodule"
	default:
		return "unknown"
	}
}

// ClassifyMode maps any mode string to an EntryKind. Unrecognised modes are KindUnknown.
func ClassifyMode(mode FileMode) EntryKind {
	switch mode {
	case ModeRegularFile:
		return KindRegularFile
	case ModeExecutable:
		return KindExecutableFile
	case ModeSymlink:
		return KindSymlink
	case ModeDirectory, modeDirectoryPadded:
		return KindSubtree
	case ModeSubmodule:
		return KindSubmodule
	default:
		return KindUnknown
	}
}

// TreeEntry represents a single entry in a tree object
type TreeEntry struct {
	mode FileMode
	name string
	hash string // lowercase hex of the 20-byte digest
}

// NewTreeEntry builds an entry after checking it can be serialized into a tree record.
func NewTreeEntry(mode FileMode, name string, hash string) (*TreeEntry, error) {
	if mode == "" || strings.Trim(string(mode), "01234567") != "" {
		return nil, fmt.Errorf("invalid file mode: %q", mode)
	}
	if name == "" || strings.IndexByte(name, constants.NullByte) != -1 {
		return nil, fmt.Errorf("invalid entry name: %q", name)
	}
	if !isHexHash(hash) {
		return nil, fmt.Errorf("invalid entry hash: %q", hash)
	}
	return &TreeEntry{
		mode: mode,
		name: name,
		hash: hash,
	}, nil
}

func isHexHash(hash string) bool {
	if len(hash) != constants.HashStringLength {
		return false
	}
	for i := 0; i < len(hash); i++ {
		c := hash[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) Hash() string {
	return e.hash
}

// Kind classifies the entry by its mode.
func (e *TreeEntry) Kind() EntryKind {
	return ClassifyMode(e.mode)
}

func (e *TreeEntry) IsDirectory() bool {
	return e.Kind() == KindSubtree
}

func (e *TreeEntry) IsExecutable() bool {
	return e.Kind() == KindExecutableFile
}

// Tree represents a tree object (directory). Entries keep the order they were
// given or decoded in.
type Tree struct {
	entries []TreeEntry
}

// NewTree creates a tree from entries without reordering them.
func NewTree(treeEntries []TreeEntry) *Tree {
	entries := make([]TreeEntry, len(treeEntries))
	copy(entries, treeEntries)
	return &Tree{entries: entries}
}

// buildTreeContent serializes entries as tree records:
// <mode> <name>\0<20-byte binary SHA>
func buildTreeContent(entries []TreeEntry) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		buf.WriteString(string(entry.Mode()))
		buf.WriteByte(constants.SpaceByte)
		buf.WriteString(entry.Name())
		buf.WriteByte(constants.NullByte)

		hashBytes, _ := hex.DecodeString(entry.Hash())
		buf.Write(hashBytes)
	}

	return buf.Bytes()
}

func (t *Tree) Type() utils.ObjectType {
	return utils.TreeObjectType
}

// Hash returns the SHA-1 hash of the tree, recomputed from its entries
func (t *Tree) Hash() string {
	hash, _ := utils.ComputeHash(t.Content(), utils.TreeObjectType)
	return hash
}

// Entries returns all tree entries
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// Size returns the size of the tree content
func (t *Tree) Size() int {
	return len(buildTreeContent(t.entries))
}

// Content returns the raw tree content
func (t *Tree) Content() []byte {
	return buildTreeContent(t.entries)
}

// Header returns the object header
func (t *Tree) Header() string {
	return fmt.Sprintf("tree %d\x00", t.Size())
}

func (t *Tree) Data() []byte {
	content := t.Content()
	header := fmt.Sprintf("tree %d\x00", len(content))
	return append([]byte(header), content...)
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{hash: %s, entries: %d}", t.Hash(), len(t.entries))
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for i := range t.entries {
		if t.entries[i].Name() == name {
			return &t.entries[i], true
		}
	}
	return nil, false
}
