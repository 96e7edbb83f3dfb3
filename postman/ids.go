package postman

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IDGenerator produces identifiers for generated documents
// (collection _postman_id, environment id). Injectable so tests can use
// a fixed sequence.
type IDGenerator func() string

// idAlphabet restricts generated ids to URL-safe lowercase characters.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idLength matches the default nanoid length.
const idLength = 21

// NewID is the default IDGenerator, backed by nanoid.
func NewID() string {
	return gonanoid.MustGenerate(idAlphabet, idLength)
}

// FixedIDs returns an IDGenerator that yields id-1, id-2, ... for
// deterministic test output.
func FixedIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}
