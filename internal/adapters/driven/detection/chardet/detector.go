// Package chardet adapts the gogs/chardet statistical charset detector
// to the driven.TextDetector port.
package chardet

import (
	"errors"
	"sort"
	"strings"

	cdet "github.com/gogs/chardet"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// declaredBoost is added to the confidence of a candidate matching the
// declared encoding before re-ranking. The declared value is a prior:
// strong byte evidence for another encoding still overrides it.
const declaredBoost = 10

// Ensure Detector implements the interface.
var _ driven.TextDetector = (*Detector)(nil)

// Detector wraps a chardet HTML detector. The HTML variant strips
// markup before sniffing byte-frequency patterns; tag bytes would bias
// detection towards ASCII-compatible encodings otherwise.
type Detector struct {
	det *cdet.Detector
}

// New creates a markup-filtering statistical detector.
func New() *Detector {
	return &Detector{det: cdet.NewHtmlDetector()}
}

// DetectAll implements driven.TextDetector.
func (d *Detector) DetectAll(content []byte, declared string) ([]domain.CharsetCandidate, error) {
	results, err := d.det.DetectAll(content)
	if err != nil {
		if errors.Is(err, cdet.NotDetectedError) {
			return nil, nil
		}
		return nil, err
	}

	candidates := make([]domain.CharsetCandidate, 0, len(results))
	for _, r := range results {
		c := domain.CharsetCandidate{
			Charset:    r.Charset,
			Language:   r.Language,
			Confidence: r.Confidence,
		}
		if declared != "" && strings.EqualFold(c.Charset, declared) {
			c.Confidence += declaredBoost
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates, nil
}
