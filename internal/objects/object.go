package objects

import "github.com/KostasZigo/looseobj/utils"

// Object is a decoded loose object. The set of implementations is closed:
// every Object is either a *Blob or a *Tree, so consumers switch on the
// concrete type and handle both.
type Object interface {
	// Type returns the object type tag used in the header
	Type() utils.ObjectType

	// Hash returns the SHA-1 content address of the object
	Hash() string

	// Content returns the object body without header
	Content() []byte

	// Data returns the complete object data including header
	// Format: "<type> <size>\0<content>"
	Data() []byte

	isObject()
}

func (*Blob) isObject() {}
func (*Tree) isObject() {}
