package mcpserver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apibridge/swag2postman/postman"
)

const petstoreContent = `{
  "openapi": "3.0.3",
  "info": {"title": "Petstore"},
  "servers": [{"url": "https://api.example.com"}],
  "paths": {
    "/pets": {
      "get": {"summary": "List pets"},
      "post": {
        "summary": "Create a pet",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/Pet"}
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {"type": "object", "properties": {"name": {"type": "string"}}}
    }
  }
}`

func TestHandleGenerateInline(t *testing.T) {
	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{Content: petstoreContent},
		Seed: 7,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "Petstore", output.CollectionName)
	assert.Equal(t, 2, output.RequestCount)
	assert.Equal(t, 1, output.EnvironmentCount)
	assert.Empty(t, output.Files)

	var collection postman.Collection
	require.NoError(t, json.Unmarshal(output.Collection, &collection))
	require.Len(t, collection.Items, 2)
	assert.Equal(t, "List pets", collection.Items[0].Name)

	require.Len(t, output.Environments, 1)
	var env postman.Environment
	require.NoError(t, json.Unmarshal(output.Environments[0], &env))
	assert.Equal(t, "api.example.com", env.Name)
}

func TestHandleGenerateWritesFiles(t *testing.T) {
	outDir := t.TempDir()
	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:      specInput{Content: petstoreContent},
		OutputDir: outDir,
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, outDir, output.OutputDir)
	assert.Equal(t, []string{"environment_api.example.com.json", "collection_generated.json"}, output.Files)
	assert.Nil(t, output.Collection, "documents are not returned inline when written to disk")

	data, err := os.ReadFile(filepath.Join(outDir, "collection_generated.json"))
	require.NoError(t, err)
	var collection postman.Collection
	require.NoError(t, json.Unmarshal(data, &collection))
	assert.Equal(t, "Petstore", collection.Info.Name)
}

func TestHandleGenerateFromFile(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "petstore.json")
	require.NoError(t, os.WriteFile(specPath, []byte(petstoreContent), 0o600))

	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{File: specPath},
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "Petstore", output.CollectionName)
}

func TestHandleGenerateMissingRef(t *testing.T) {
	const dangling = `{
	  "openapi": "3.0.3",
	  "paths": {
	    "/pets": {
	      "post": {
	        "requestBody": {
	          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Gone"}}}
	        }
	      }
	    }
	  }
	}`

	result, _, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{Content: dangling},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError, "missing component references fail by default")

	result, output, err := handleGenerate(context.Background(), nil, generateInput{
		Spec:            specInput{Content: dangling},
		KeepMissingRefs: true,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	require.Len(t, output.Warnings, 1)
	assert.Contains(t, output.Warnings[0], "#/components/schemas/Gone")
}

func TestHandleGenerateInvalidSpec(t *testing.T) {
	result, _, err := handleGenerate(context.Background(), nil, generateInput{
		Spec: specInput{Content: "{not json"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
