package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordSourceDeterministic(t *testing.T) {
	a := NewWordSource(11)
	b := NewWordSource(11)

	for range 10 {
		assert.Equal(t, a(), b(), "identical seeds yield identical word sequences")
	}
}

func TestNewWordSourceProducesWords(t *testing.T) {
	words := NewWordSource(7)
	for range 5 {
		require.NotEmpty(t, words())
	}
}
