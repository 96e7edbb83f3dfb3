package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/apibridge/swag2postman"
	"github.com/apibridge/swag2postman/internal/cliutil"
	"github.com/apibridge/swag2postman/internal/mcpserver"
	"github.com/apibridge/swag2postman/pipeline"
	"github.com/apibridge/swag2postman/spec"
)

// apiKeyEnvVar is the environment variable consulted when --api-key is
// not given.
const apiKeyEnvVar = "POSTMAN_API_KEY"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("swag2postman v%s\n", swag2postman.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	outputDir       string
	publish         bool
	apiKey          string
	postmanBase     string
	seed            uint64
	keepMissingRefs bool
	printDocuments  bool
	verbose         bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.outputDir, "o", ".", "output directory for generated files")
	fs.StringVar(&flags.outputDir, "output", ".", "output directory for generated files")
	fs.BoolVar(&flags.publish, "publish", false, "upload the generated documents to the Postman API")
	fs.StringVar(&flags.apiKey, "api-key", "", "Postman API key (defaults to the POSTMAN_API_KEY environment variable)")
	fs.StringVar(&flags.postmanBase, "postman-base", "", "override the Postman API base URL")
	fs.Uint64Var(&flags.seed, "seed", 0, "seed for generated placeholder values (0 = random)")
	fs.BoolVar(&flags.keepMissingRefs, "keep-missing-refs", false, "emit requests without a body instead of failing on missing component schema references")
	fs.BoolVar(&flags.printDocuments, "print", false, "print the generated documents to stdout for inspection")
	fs.BoolVar(&flags.verbose, "v", false, "enable debug logging")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: swag2postman generate [flags] <file|->\n\n")
		_, _ = fmt.Fprintf(output, "Generate Postman environment and collection files from an OpenAPI specification.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  swag2postman generate openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  swag2postman generate -o out --seed 42 openapi.json\n")
		_, _ = fmt.Fprintf(output, "  swag2postman generate --publish --api-key $POSTMAN_API_KEY openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  cat openapi.json | swag2postman generate -\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path (or - for stdin)")
	}

	apiKey := flags.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar)
	}

	var logger spec.Logger
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = spec.NewSlogAdapter(slog.New(handler))
	}

	cfg := pipeline.Config{
		InputPath:       fs.Arg(0),
		OutputDir:       flags.outputDir,
		APIKey:          apiKey,
		PostmanBaseURL:  flags.postmanBase,
		PublishEnabled:  flags.publish,
		KeepMissingRefs: flags.keepMissingRefs,
		Seed:            flags.seed,
		Logger:          logger,
	}

	summary, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	out := os.Stdout
	cliutil.Writef(out, "Postman Generator\n")
	cliutil.Writef(out, "=================\n\n")
	cliutil.Writef(out, "swag2postman version: %s\n", swag2postman.Version())
	cliutil.Writef(out, "Specification: %s\n", cfg.InputPath)
	cliutil.Writef(out, "Collection: %s\n", summary.CollectionName)
	cliutil.Writef(out, "Paths: %d\n", summary.Stats.PathCount)
	cliutil.Writef(out, "Operations: %d\n", summary.Stats.OperationCount)
	cliutil.Writef(out, "Servers: %d\n\n", summary.Stats.ServerCount)

	if len(summary.Warnings) > 0 {
		cliutil.Writef(out, "Warnings:\n")
		for _, warning := range summary.Warnings {
			cliutil.Writef(out, "  - %s\n", warning)
		}
		cliutil.Writef(out, "\n")
	}

	if flags.printDocuments {
		if err := printDocuments(summary); err != nil {
			return err
		}
	}

	cliutil.Writef(out, "Files written:\n")
	for _, path := range summary.EnvironmentFiles {
		cliutil.Writef(out, "  %s\n", path)
	}
	cliutil.Writef(out, "  %s\n", summary.CollectionFile)
	if summary.Published > 0 {
		cliutil.Writef(out, "\nPublished %d document(s) to the Postman API\n", summary.Published)
	}
	cliutil.Writef(out, "\nGeneration complete\n")
	return nil
}

// printDocuments dumps the generated files back to stdout for
// inspection. Reading them from disk keeps the dump identical to what
// was written.
func printDocuments(summary *pipeline.Summary) error {
	paths := append(append([]string{}, summary.EnvironmentFiles...), summary.CollectionFile)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := cliutil.PrintDocument(os.Stdout, path, json.RawMessage(data)); err != nil {
			return err
		}
	}
	return nil
}

func printUsage() {
	fmt.Println(`swag2postman - OpenAPI to Postman Generator

Usage:
  swag2postman <command> [options]

Commands:
  generate    Generate Postman environment and collection files from an OpenAPI spec
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  swag2postman generate openapi.yaml
  swag2postman generate -o out --seed 42 openapi.json
  swag2postman generate --publish --api-key $POSTMAN_API_KEY openapi.yaml

Run 'swag2postman <command> --help' for more information on a command.`)
}
