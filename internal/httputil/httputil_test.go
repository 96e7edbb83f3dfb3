package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalMethodOrder(t *testing.T) {
	assert.Equal(t, []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}, CanonicalMethodOrder)
}
