package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apibridge/swag2postman/converter"
	"github.com/apibridge/swag2postman/internal/fileutil"
)

type generateInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OpenAPI document to generate Postman documents from"`
	OutputDir       string    `json:"output_dir,omitempty"       jsonschema:"Directory to write generated files to; omit to return documents inline"`
	Seed            uint64    `json:"seed,omitempty"             jsonschema:"Seed for placeholder values; same seed yields identical output"`
	KeepMissingRefs bool      `json:"keep_missing_refs,omitempty" jsonschema:"Emit requests without a body instead of failing on missing component schema references"`
}

type generateOutput struct {
	CollectionName   string            `json:"collection_name"`
	RequestCount     int               `json:"request_count"`
	EnvironmentCount int               `json:"environment_count"`
	Warnings         []string          `json:"warnings,omitempty"`
	OutputDir        string            `json:"output_dir,omitempty"`
	Files            []string          `json:"files,omitempty"`
	Collection       json.RawMessage   `json:"collection,omitempty"`
	Environments     []json.RawMessage `json:"environments,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	loaded, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	conv := converter.New()
	conv.Words = converter.NewWordSource(input.Seed)
	conv.FailOnMissingRef = !input.KeepMissingRefs
	conv.FallbackName = input.Spec.fallbackName()
	result, err := conv.Convert(loaded.Document)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	output := generateOutput{
		CollectionName:   result.Collection.Info.Name,
		RequestCount:     len(result.Collection.Items),
		EnvironmentCount: len(result.Environments),
		Warnings:         result.Warnings,
	}

	if input.OutputDir != "" {
		output.OutputDir = input.OutputDir
		for _, env := range result.Environments {
			path := filepath.Join(input.OutputDir, "environment_"+env.Name+".json")
			if err := fileutil.WriteJSON(path, env); err != nil {
				return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
			}
			output.Files = append(output.Files, filepath.Base(path))
		}
		collectionPath := filepath.Join(input.OutputDir, "collection_generated.json")
		if err := fileutil.WriteJSON(collectionPath, result.Collection); err != nil {
			return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
		}
		output.Files = append(output.Files, filepath.Base(collectionPath))
		return nil, output, nil
	}

	collectionJSON, err := json.Marshal(result.Collection)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}
	output.Collection = collectionJSON
	for _, env := range result.Environments {
		envJSON, err := json.Marshal(env)
		if err != nil {
			return errResult(err), generateOutput{}, nil
		}
		output.Environments = append(output.Environments, envJSON)
	}
	return nil, output, nil
}
