package domain

// CharsetCandidate is one guess produced by statistical charset
// detection. Candidates are ordered by descending confidence.
type CharsetCandidate struct {
	// Charset is the IANA name of the detected charset.
	Charset string

	// Language is the IANA name of the detected language.
	// Empty for encodings that are not language-specific.
	Language string

	// Confidence is the detection confidence from 1 to 100.
	Confidence int
}

// ResolvedEncoding is the final encoding decision for a byte stream.
// Name is always a non-empty, supported encoding name.
type ResolvedEncoding struct {
	// Name is the resolved character encoding name.
	Name string

	// Language is the detected natural language, if the winning
	// detection candidate carried one.
	Language string
}
