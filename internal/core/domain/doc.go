// Package domain defines the core business entities for Docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An ingested document with metadata
//   - RawDocument: Opaque bytes handed to the ingestion pipeline
//   - Metadata: Key-value side effects recorded during ingestion
//   - CharsetCandidate: One statistical charset detection guess
//   - ResolvedEncoding: The final character encoding decision
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
