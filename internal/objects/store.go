package objects

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/KostasZigo/looseobj/internal/constants"
	"golang.org/x/sync/errgroup"
)

var objectsRelativeFilePath string = filepath.Join(constants.Gogit, constants.Objects)

// ObjectStore loads loose objects from a repository
type ObjectStore struct {
	repoPath     string // Path to repository root
	storage      Storage
	decompressor Decompressor
}

type StoreOption func(*ObjectStore)

// WithStorage replaces the filesystem reader.
func WithStorage(storage Storage) StoreOption {
	return func(store *ObjectStore) {
		store.storage = storage
	}
}

// WithDecompressor replaces the default zlib decompressor.
func WithDecompressor(decompressor Decompressor) StoreOption {
	return func(store *ObjectStore) {
		store.decompressor = decompressor
	}
}

// WithMaxObjectSize caps the decompressed size of a single object.
func WithMaxObjectSize(maxSize int64) StoreOption {
	return func(store *ObjectStore) {
		store.decompressor = ZlibDecompressor{MaxSize: maxSize}
	}
}

func NewObjectStore(repoPath string, options ...StoreOption) *ObjectStore {
	store := &ObjectStore{
		repoPath:     repoPath,
		storage:      FileStorage{},
		decompressor: ZlibDecompressor{MaxSize: constants.DefaultMaxObjectSize},
	}
	for _, option := range options {
		option(store)
	}
	return store
}

// ObjectPath returns .gogit/objects/<first 2 chars>/<rest> for hash.
func (store *ObjectStore) ObjectPath(hash string) (string, error) {
	if !isHexHash(hash) {
		return "", newError(ErrInvalidHash, hash, nil)
	}
	return filepath.Join(store.repoPath, objectsRelativeFilePath,
		hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:]), nil
}

// ReadFile reads, decompresses and decodes the loose object stored at location.
func (store *ObjectStore) ReadFile(location string) (Object, error) {
	compressedData, err := store.storage.ReadObject(location)
	if err != nil {
		return nil, newError(ErrStorageRead, location, err)
	}

	data, err := store.decompressor.Decompress(compressedData)
	if err != nil {
		return nil, newError(ErrDecompression, location, err)
	}

	slog.Debug("Read loose object",
		"path", location,
		"compressed", len(compressedData),
		"decompressed", len(data))

	return Decode(data)
}

// Read loads the object named hash and checks its content still hashes to that name.
func (store *ObjectStore) Read(hash string) (Object, error) {
	objectFile, err := store.ObjectPath(hash)
	if err != nil {
		return nil, err
	}

	object, err := store.ReadFile(objectFile)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", hash, err)
	}

	if actual := object.Hash(); actual != hash {
		return nil, newError(ErrHashMismatch, "object "+hash, fmt.Errorf("content hashes to %s", actual))
	}

	return object, nil
}

// ReadAll reads several objects concurrently. Results keep the order of hashes;
// the first failure cancels the remaining reads.
func (store *ObjectStore) ReadAll(ctx context.Context, hashes []string) ([]Object, error) {
	results := make([]Object, len(hashes))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(constants.DefaultReadParallelism)
	for i, hash := range hashes {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			object, err := store.Read(hash)
			if err != nil {
				return err
			}
			results[i] = object
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Exists reports whether the object named hash is present in storage.
// Malformed hashes are never present.
func (store *ObjectStore) Exists(hash string) (bool, error) {
	objectFile, err := store.ObjectPath(hash)
	if err != nil {
		return false, nil
	}
	found, err := store.storage.HasObject(objectFile)
	if err != nil {
		return false, newError(ErrStorageRead, objectFile, err)
	}
	return found, nil
}
