package utils

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pjbgf/sha1cd"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType:
		return true
	default:
		return false
	}
}

// HashData returns the lowercase hex SHA-1 digest of data exactly as given.
// Uses the collision-detecting SHA-1 variant; output equals plain SHA-1 for
// non-colliding input.
func HashData(data []byte) string {
	hasher := sha1cd.New()
	hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// ComputeHash calculates the content address of an object: the digest of
// "<type> <size>\0<content>". content is only read.
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	header := fmt.Sprintf("%v %d\x00", objectType, len(content))
	data := make([]byte, 0, len(header)+len(content))
	data = append(data, header...)
	data = append(data, content...)
	return HashData(data), nil
}

// BuildDirPath constructs os-agnostic display directory path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
