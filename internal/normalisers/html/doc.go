// Package html provides a Normaliser implementation for HTML documents.
// It resolves the character encoding of the raw bytes, tokenises the
// decoded stream with the tolerant golang.org/x/net/html tokenizer, and
// filters the element events through a safe-element policy: structural
// tags are renamed to a reduced canonical vocabulary, unknown tags are
// dropped while their content is kept, and style/script subtrees are
// discarded entirely.
package html
