// Package normalisers provides implementations of the Normaliser interface
// for various document formats. Each normaliser knows how to extract text
// content from a specific MIME type.
//
// Normalisers are handed to the IngestService at startup, which selects
// one per document by MIME type and priority.
package normalisers
