package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KostasZigo/looseobj/internal/constants"
)

// InitRepository creates the metadata directory with an empty object database.
func InitRepository(path string) error {
	gogitDir := filepath.Join(path, constants.Gogit)

	if err := checkRepositoryDoesNotExist(gogitDir); err != nil {
		return err
	}

	// Cleanup runs unless every directory and file below was created.
	var initSuccess bool
	defer func() {
		if !initSuccess {
			cleanupRepository(gogitDir)
		}
	}()

	directories := []string{
		gogitDir,
		filepath.Join(gogitDir, constants.Objects),
		filepath.Join(gogitDir, constants.Refs),
		filepath.Join(gogitDir, constants.Refs, constants.Heads),
		filepath.Join(gogitDir, constants.Refs, constants.Tags),
	}

	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	headFile := filepath.Join(gogitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create %s file: %w", constants.Head, err)
	}

	initSuccess = true
	return nil
}

// FindRoot locates the repository root by walking up from start until a
// directory containing the metadata directory is found.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		gogitPath := filepath.Join(dir, constants.Gogit)
		if info, err := os.Stat(gogitPath); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s directory not found", constants.Gogit)
		}
		dir = parent
	}
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return fmt.Errorf("repository already exists at %s", path)
}

// Removes the entire metadata directory if it exists
func cleanupRepository(gogitDir string) {
	if _, err := os.Stat(gogitDir); err == nil {
		slog.Debug("Cleaning up partial repository initialization",
			"path", gogitDir)

		if err := os.RemoveAll(gogitDir); err != nil {
			slog.Warn("Failed to cleanup repository directory",
				"path", gogitDir,
				"error", err)
		} else {
			slog.Debug("Successfully cleaned up repository directory",
				"path", gogitDir)
		}
	}
}
