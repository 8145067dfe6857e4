// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core packages depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextDetector: Statistical charset detection from byte patterns
//   - ElementMapper: Safe-element classification for HTML filtering
//   - Normaliser: Transforms raw documents into ingested form
//
// # Optional Interfaces
//
//   - DocumentStore: Document persistence (only needed when storing)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
