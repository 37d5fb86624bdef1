package objects

import (
	"fmt"
	"os"

	"github.com/KostasZigo/looseobj/utils"
)

type Blob struct {
	content []byte
}

// NewBlob copies content so the blob never aliases the caller's buffer.
func NewBlob(content []byte) *Blob {
	owned := make([]byte, len(content))
	copy(owned, content)
	return &Blob{
		content: owned,
	}
}

func NewBlobFromFile(filepath string) (*Blob, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return &Blob{content: content}, nil
}

func (b *Blob) Type() utils.ObjectType {
	return utils.BlobObjectType
}

// Hash computes the blob's content address. It only reads the blob and may be
// called any number of times.
func (b *Blob) Hash() string {
	hash, _ := utils.ComputeHash(b.content, utils.BlobObjectType)
	return hash
}

func (b *Blob) Content() []byte {
	return b.content
}

func (b *Blob) Size() int {
	return len(b.content)
}

func (b *Blob) Header() string {
	return fmt.Sprintf("blob %d\x00", b.Size())
}

func (b *Blob) Data() []byte {
	header := b.Header()
	data := make([]byte, 0, len(header)+b.Size())
	data = append(data, header...)
	return append(data, b.content...)
}

func (b *Blob) String() string {
	return fmt.Sprintf("Blob{hash: %s, size: %d bytes}", b.Hash(), b.Size())
}
