package testutils

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/looseobj/internal/constants"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/objfile"
	"github.com/klauspost/compress/zlib"
)

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	buf := make([]byte, n)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithGogitDir creates a temporary directory with .gogit/objects structure.
// This is useful for tests that need the repository structure but not full initialization.
func SetupTestRepoWithGogitDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	gogitDir := filepath.Join(repoPath, constants.Gogit, constants.Objects)

	if err := os.MkdirAll(gogitDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create %s/%s: %v", constants.Gogit, constants.Objects, err)
	}

	return repoPath
}

// SetupTestRepoWithInit creates a fully initialized .gogit repository structure.
// This includes objects/, refs/heads/, refs/tags/, and HEAD file.
func SetupTestRepoWithInit(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	gogitDir := filepath.Join(repoPath, constants.Gogit)

	// Create directory structure
	dirs := []string{
		filepath.Join(gogitDir, constants.Objects),
		filepath.Join(gogitDir, constants.Refs, constants.Heads),
		filepath.Join(gogitDir, constants.Refs, constants.Tags),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, constants.DirPerms); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Create HEAD file
	headPath := filepath.Join(gogitDir, constants.Head)
	headContent := []byte(constants.DefaultRefPrefix + constants.DefaultBranch + "\n")
	if err := os.WriteFile(headPath, headContent, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create %s file: %v", constants.Head, err)
	}

	return repoPath
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
// Fails the test if the file exists.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// AssertDirExists checks that a directory exists at the given path.
// Fails the test if the directory doesn't exist.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("Failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, but it's a file", path)
	}
}

// assertRepositoryStructure validates complete .gogit directory structure.
// Verifies objects/, refs/heads/, refs/tags/ exist and HEAD contains correct branch reference.
// Fatal error if any validation fails.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gogitDir := filepath.Join(repoPath, constants.Gogit)
	AssertDirExists(t, gogitDir)

	expectedDirs := []string{
		constants.Objects,
		constants.Refs,
		filepath.Join(constants.Refs, constants.Heads),
		filepath.Join(constants.Refs, constants.Tags),
	}
	for _, dir := range expectedDirs {
		AssertDirExists(t, filepath.Join(gogitDir, dir))
	}

	headPath := filepath.Join(gogitDir, constants.Head)
	AssertFileExists(t, headPath)

	content, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("Failed to read %s file: %v", constants.Head, err)
	}

	expectedContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"
	if string(content) != expectedContent {
		t.Errorf("%s content = %q, want %q", constants.Head, content, expectedContent)
	}
}

// WriteCompressedObject zlib-compresses raw (header included, well-formed or not)
// and stores it under objects/ as the loose object named hash.
// Returns the full path of the written file.
func WriteCompressedObject(t *testing.T, repoPath, hash string, raw []byte) string {
	t.Helper()

	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(raw); err != nil {
		t.Fatalf("Failed to compress object: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to flush compressed object: %v", err)
	}

	return writeObjectFile(t, repoPath, hash, buffer.Bytes())
}

// WriteLooseObject encodes content as a loose object of the given type using
// go-git's object file writer, stores it and returns its hash.
func WriteLooseObject(t *testing.T, repoPath string, objectType plumbing.ObjectType, content []byte) string {
	t.Helper()

	var buffer bytes.Buffer
	writer := objfile.NewWriter(&buffer)
	if err := writer.WriteHeader(objectType, int64(len(content))); err != nil {
		t.Fatalf("Failed to write object header: %v", err)
	}
	if _, err := writer.Write(content); err != nil {
		t.Fatalf("Failed to write object content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close object writer: %v", err)
	}

	hash := writer.Hash().String()
	writeObjectFile(t, repoPath, hash, buffer.Bytes())
	return hash
}

func writeObjectFile(t *testing.T, repoPath, hash string, compressed []byte) string {
	t.Helper()

	objectDir := filepath.Join(repoPath, constants.Gogit, constants.Objects, hash[:constants.HashDirPrefixLength])
	if err := os.MkdirAll(objectDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create object directory %s: %v", objectDir, err)
	}

	objectPath := filepath.Join(objectDir, hash[constants.HashDirPrefixLength:])
	if err := os.WriteFile(objectPath, compressed, constants.FilePerms); err != nil {
		t.Fatalf("Failed to write object file %s: %v", objectPath, err)
	}
	return objectPath
}

// TreeRecord builds one raw tree record: <mode> <name>\0<20-byte digest>.
func TreeRecord(mode, name string, digest []byte) []byte {
	record := make([]byte, 0, len(mode)+len(name)+2+len(digest))
	record = append(record, mode...)
	record = append(record, ' ')
	record = append(record, name...)
	record = append(record, 0)
	return append(record, digest...)
}

// SequentialDigest returns 20 bytes counting up from start.
func SequentialDigest(start byte) []byte {
	digest := make([]byte, constants.HashByteLength)
	for i := range digest {
		digest[i] = start + byte(i)
	}
	return digest
}
