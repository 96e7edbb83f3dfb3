package converter

import "github.com/brianvoe/gofakeit/v7"

// WordSource produces placeholder words for generated values. Injecting
// a fixed source makes generation fully deterministic for tests.
type WordSource func() string

// NewWordSource returns a word source backed by gofakeit seeded with the
// given seed. The same seed always yields the same word sequence.
func NewWordSource(seed uint64) WordSource {
	faker := gofakeit.New(seed)
	return faker.Word
}

// DefaultWords returns a randomly seeded word source.
func DefaultWords() WordSource {
	return NewWordSource(0)
}

// Representative placeholder values for non-string scalar kinds.
// Fixed rather than randomized so numeric output is stable across runs.
const (
	placeholderInteger = 42
	placeholderNumber  = 3.14
)
