// Package services contains the core application services.
//
// Services implement the use cases of the ingestion pipeline by
// coordinating domain entities and driven ports. They hold no
// infrastructure code themselves.
//
// # Import Rules
//
//   - Can Import: domain, ports
//   - Cannot Import: Any adapter or normaliser package
package services
