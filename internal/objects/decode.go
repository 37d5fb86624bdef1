package objects

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/KostasZigo/looseobj/internal/constants"
	"github.com/KostasZigo/looseobj/utils"
)

// Decode turns a decompressed loose object into a *Blob or *Tree.
// The returned object does not reference data.
func Decode(data []byte) (Object, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	content := data[header.End+1:]
	if len(content) != header.Size {
		return nil, newError(ErrSizeMismatch, "content",
			fmt.Errorf("declared %d bytes, found %d", header.Size, len(content)))
	}

	slog.Debug("Decoding object", "type", header.Type, "size", header.Size)

	switch utils.ObjectType(header.Type) {
	case utils.BlobObjectType:
		return NewBlob(content), nil
	case utils.TreeObjectType:
		entries, err := ParseTreeEntries(content)
		if err != nil {
			return nil, err
		}
		return &Tree{entries: entries}, nil
	default:
		return nil, newError(ErrUnknownObjectType, "type "+header.Type, nil)
	}
}

// ParseTreeEntries decodes the concatenated <mode> <name>\0<20 bytes> records
// of a tree body in stored order. Either every record decodes or none are returned.
func ParseTreeEntries(content []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	cursor := NewCursor(content)

	for !cursor.Done() {
		start := cursor.Offset()

		mode, err := cursor.ReadUntil(constants.SpaceByte)
		if err != nil {
			return nil, newError(ErrTruncatedEntry, fmt.Sprintf("tree entry mode at offset %d", start), err)
		}
		if !utf8.Valid(mode) {
			return nil, newError(ErrEncoding, fmt.Sprintf("tree entry mode at offset %d", start), nil)
		}

		name, err := cursor.ReadUntil(constants.NullByte)
		if err != nil {
			return nil, newError(ErrTruncatedEntry, fmt.Sprintf("tree entry name at offset %d", start), err)
		}
		if !utf8.Valid(name) {
			return nil, newError(ErrEncoding, fmt.Sprintf("tree entry name at offset %d", start), nil)
		}

		digest, err := cursor.ReadExact(constants.HashByteLength)
		if err != nil {
			return nil, newError(ErrTruncatedHash, fmt.Sprintf("tree entry %q hash", name), err)
		}

		entries = append(entries, TreeEntry{
			mode: FileMode(mode),
			name: string(name),
			hash: hex.EncodeToString(digest),
		})
	}

	return entries, nil
}
