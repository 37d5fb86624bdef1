package objects

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/KostasZigo/looseobj/internal/constants"
)

// Header is the framing prefix of a loose object: "<type> <size>\0".
type Header struct {
	Type string
	Size int
	// End is the offset of the NUL byte terminating the header.
	End int
}

// ParseHeader extracts the type tag and declared size from the start of a
// decompressed loose object.
func ParseHeader(data []byte) (Header, error) {
	spaceIndex := bytes.IndexByte(data, constants.SpaceByte)
	if spaceIndex == -1 {
		return Header{}, newError(ErrHeaderFormat, "header", errors.New("no space separator"))
	}
	nullIndex := bytes.IndexByte(data, constants.NullByte)
	if nullIndex == -1 {
		return Header{}, newError(ErrHeaderFormat, "header", errors.New("no null terminator"))
	}
	if nullIndex < spaceIndex {
		return Header{}, newError(ErrHeaderFormat, "header", fmt.Errorf("null terminator at %d precedes space at %d", nullIndex, spaceIndex))
	}

	typeTag := data[:spaceIndex]
	if !utf8.Valid(typeTag) {
		return Header{}, newError(ErrEncoding, "header type", nil)
	}

	sizeField := string(data[spaceIndex+1 : nullIndex])
	size, err := strconv.ParseUint(sizeField, 10, strconv.IntSize-1)
	if err != nil {
		return Header{}, newError(ErrSizeFormat, "header size", err)
	}

	return Header{
		Type: string(typeTag),
		Size: int(size),
		End:  nullIndex,
	}, nil
}
