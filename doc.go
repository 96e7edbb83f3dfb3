// Package swag2postman converts OpenAPI 3.x specifications into Postman
// collections and environments.
//
// The library consists of four primary packages:
//
//   - spec: load and model OpenAPI documents (JSON or YAML)
//   - converter: transform a loaded document into Postman output documents
//   - publisher: push generated documents to the Postman API
//   - pipeline: wire the full load → generate → persist → publish run
//
// # Quick Start
//
// Generate a collection and environments from a spec file:
//
//	import "github.com/apibridge/swag2postman/pipeline"
//
//	summary, err := pipeline.Run(context.Background(), pipeline.Config{
//		InputPath: "openapi.json",
//		OutputDir: ".",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("collection written to", summary.CollectionFile)
//
// Or use the packages directly:
//
//	result, err := spec.Load("openapi.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := converter.Convert(result.Document)
//
// Structured error types live in the pmerrors package and support
// errors.Is/errors.As for programmatic handling.
package swag2postman
