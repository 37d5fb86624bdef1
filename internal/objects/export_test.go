package objects

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KostasZigo/looseobj/testutils"
	"github.com/KostasZigo/looseobj/utils"
)

// assertBlobHash verifies blob hash matches expected value for given content.
func assertBlobHash(t *testing.T, blob *Blob, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, utils.BlobObjectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if blob.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, blob.Hash())
	}
}

// assertBlobContent verifies blob stores exact content and correct size.
func assertBlobContent(t *testing.T, blob *Blob, expectedContent []byte) {
	t.Helper()

	if blob.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), blob.Size())
	}

	if string(blob.Content()) != string(expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, blob.Content())
	}
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// assertTreeEntryEqual verifies two tree entries match.
func assertTreeEntryEqual(t *testing.T, actual, expected TreeEntry) {
	t.Helper()

	if actual.Name() != expected.Name() {
		t.Errorf("Entry name mismatch: expected %s, got %s", expected.Name(), actual.Name())
	}
	if actual.Hash() != expected.Hash() {
		t.Errorf("Entry hash mismatch: expected %s, got %s", expected.Hash(), actual.Hash())
	}
	if actual.Mode() != expected.Mode() {
		t.Errorf("Entry mode mismatch: expected %s, got %s", expected.Mode(), actual.Mode())
	}
}

// decodeBlob decodes data and fails unless the result is a blob.
func decodeBlob(t *testing.T, data []byte) *Blob {
	t.Helper()

	object, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	blob, ok := object.(*Blob)
	if !ok {
		t.Fatalf("Expected *Blob, got %T", object)
	}
	return blob
}

// decodeTree decodes data and fails unless the result is a tree.
func decodeTree(t *testing.T, data []byte) *Tree {
	t.Helper()

	object, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	tree, ok := object.(*Tree)
	if !ok {
		t.Fatalf("Expected *Tree, got %T", object)
	}
	return tree
}

// assertErrorKind verifies err is non-nil and carries kind.
func assertErrorKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()

	if err == nil {
		t.Fatalf("Expected %q error, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("Expected %q error, got: %v", kind, err)
	}
	if KindOf(err) != kind {
		t.Fatalf("Expected KindOf to return %q, got %q", kind, KindOf(err))
	}
}

// threeEntryTree is a tree body holding two regular files and one subtree.
func threeEntryTree() []byte {
	var content []byte
	content = append(content, testutils.TreeRecord("100644", "file1.txt", testutils.SequentialDigest(0x01))...)
	content = append(content, testutils.TreeRecord("100644", "file2.txt", testutils.SequentialDigest(0x51))...)
	content = append(content, testutils.TreeRecord("40000", "folder", testutils.SequentialDigest(0x81))...)
	return content
}

// envelope prefixes content with a well-formed header of objectType.
func envelope(objectType string, content []byte) []byte {
	header := fmt.Sprintf("%s %d\x00", objectType, len(content))
	return append([]byte(header), content...)
}
