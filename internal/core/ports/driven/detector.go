package driven

import "github.com/docsift/docsift/internal/core/domain"

// TextDetector performs statistical charset detection on raw bytes.
// Implementations must filter markup out of the input before sniffing
// byte-frequency patterns; tag bytes bias detection otherwise.
type TextDetector interface {
	// DetectAll returns all plausible charsets for content, ordered by
	// descending confidence. declared, when non-empty, names an encoding
	// asserted by an external source; it is a prior that raises the
	// ranking of a matching candidate, not an automatic answer. A nil
	// slice with a nil error means nothing was detected.
	DetectAll(content []byte, declared string) ([]domain.CharsetCandidate, error)
}
