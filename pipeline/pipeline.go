// Package pipeline runs the full generation flow: load a specification,
// convert it to Postman documents, write them to disk, and optionally
// publish them to the Postman API.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/apibridge/swag2postman"
	"github.com/apibridge/swag2postman/converter"
	"github.com/apibridge/swag2postman/internal/fileutil"
	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/publisher"
	"github.com/apibridge/swag2postman/spec"
)

// CollectionFileName is the output file name for the generated collection.
const CollectionFileName = "collection_generated.json"

// environmentFilePrefix prefixes per-server environment file names.
const environmentFilePrefix = "environment_"

// Config holds the settings for a pipeline run.
type Config struct {
	// InputPath is the specification file path, or "-" for stdin.
	InputPath string
	// OutputDir is the directory generated files are written to.
	// Defaults to the current directory.
	OutputDir string
	// APIKey is the Postman API key used when publishing.
	APIKey string
	// PostmanBaseURL overrides the Postman API endpoint. Empty means the
	// publisher default.
	PostmanBaseURL string
	// PublishEnabled uploads the generated documents to the Postman API
	// after writing them to disk.
	PublishEnabled bool
	// KeepMissingRefs downgrades missing component schema references from
	// errors to warnings; affected requests are emitted without a body.
	KeepMissingRefs bool
	// Seed seeds the placeholder word source. Zero selects a random seed;
	// any other value makes generated values reproducible.
	Seed uint64
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger spec.Logger
}

// Validate checks the configuration for usability.
func (cfg *Config) Validate() error {
	if cfg.InputPath == "" {
		return &pmerrors.ConfigError{Option: "input", Message: "input path must not be empty"}
	}
	if cfg.PublishEnabled && cfg.APIKey == "" {
		return &pmerrors.ConfigError{Option: "api-key", Message: "publishing requires an API key"}
	}
	return nil
}

// log returns the configured logger, or a no-op logger if none is set.
func (cfg *Config) log() spec.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return spec.NopLogger{}
}

// Summary reports what a pipeline run produced.
type Summary struct {
	// CollectionName is the name of the generated collection.
	CollectionName string
	// EnvironmentFiles lists the environment file paths written, in
	// server order.
	EnvironmentFiles []string
	// CollectionFile is the collection file path written.
	CollectionFile string
	// Published counts documents uploaded to the Postman API.
	Published int
	// Warnings contains non-fatal issues from conversion.
	Warnings []string
	// Stats describes the loaded specification.
	Stats spec.DocumentStats
}

// Run executes the pipeline. Files are written before any publishing
// happens; an error mid-run leaves already written files on disk.
func Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loader := spec.New()
	loader.Logger = cfg.Logger
	loaded, err := loader.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	cfg.log().Info("specification loaded",
		"path", loaded.SourcePath,
		"format", loaded.SourceFormat,
		"paths", loaded.Stats.PathCount,
		"operations", loaded.Stats.OperationCount)

	conv := converter.New()
	conv.Logger = cfg.Logger
	conv.Words = converter.NewWordSource(cfg.Seed)
	conv.FailOnMissingRef = !cfg.KeepMissingRefs
	conv.FallbackName = inputBaseName(cfg.InputPath)
	result, err := conv.Convert(loaded.Document)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		CollectionName: result.Collection.Info.Name,
		Warnings:       result.Warnings,
		Stats:          loaded.Stats,
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}
	for _, env := range result.Environments {
		path := filepath.Join(outDir, environmentFilePrefix+env.Name+".json")
		if err := fileutil.WriteJSON(path, env); err != nil {
			return nil, err
		}
		summary.EnvironmentFiles = append(summary.EnvironmentFiles, path)
	}
	summary.CollectionFile = filepath.Join(outDir, CollectionFileName)
	if err := fileutil.WriteJSON(summary.CollectionFile, result.Collection); err != nil {
		return nil, err
	}

	if cfg.PublishEnabled {
		published, err := publish(ctx, cfg, result)
		if err != nil {
			return nil, err
		}
		summary.Published = published
	}
	return summary, nil
}

// publish uploads every generated document, updating in place when a
// document with the same name already exists.
func publish(ctx context.Context, cfg Config, result *converter.Result) (int, error) {
	client := publisher.New(cfg.APIKey)
	client.UserAgent = swag2postman.UserAgent()
	client.Logger = cfg.Logger
	if cfg.PostmanBaseURL != "" {
		client.BaseURL = cfg.PostmanBaseURL
	}

	published := 0
	for _, env := range result.Environments {
		uid, _, err := client.FindUID(ctx, publisher.ResourceEnvironments, env.Name)
		if err != nil {
			return published, err
		}
		if err := client.CreateOrUpdate(ctx, publisher.ResourceEnvironments, uid, env); err != nil {
			return published, err
		}
		published++
	}

	uid, _, err := client.FindUID(ctx, publisher.ResourceCollections, result.Collection.Info.Name)
	if err != nil {
		return published, err
	}
	if err := client.CreateOrUpdate(ctx, publisher.ResourceCollections, uid, result.Collection); err != nil {
		return published, err
	}
	return published + 1, nil
}

// inputBaseName derives a fallback collection name from the input path:
// "specs/petstore-api.yaml" becomes "petstore-api". Stdin yields "".
func inputBaseName(path string) string {
	if path == spec.StdinPath {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
