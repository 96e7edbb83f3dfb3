package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Paths: %d\n", 3)
	assert.Equal(t, "Paths: 3\n", buf.String())
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	err := PrintDocument(&buf, "Environment", map[string]string{"name": "api.example.com"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Environment:\n")
	assert.Contains(t, out, "\"name\": \"api.example.com\"")
}

func TestPrintDocumentMarshalFailure(t *testing.T) {
	var buf bytes.Buffer
	err := PrintDocument(&buf, "Broken", make(chan int))
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
