package charset

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/logger"
)

const (
	// DefaultCharset is the fallback when every resolution layer fails.
	// It is the widest common single-byte Western encoding.
	DefaultCharset = "windows-1252"

	// platformCharset is used if the configured fallback itself is not
	// supported by the runtime.
	platformCharset = "UTF-8"

	// DetectBufferSize bounds how many bytes statistical detection sees.
	// Callers must size the bufio.Reader they pass to Resolve to at
	// least this many bytes.
	DetectBufferSize = 8192
)

// contentTypeCharsetPattern extracts the charset parameter from a
// content-type string such as "text/html; charset=ISO-8859-1".
var contentTypeCharsetPattern = regexp.MustCompile(`(?i);\s*charset\s*=\s*(.*)`)

// Resolver produces one authoritative character encoding for a byte
// stream claiming to be HTML. Strategies are tried in a fixed order and
// the first supported answer wins; reordering them changes observable
// output for ambiguous documents, so the order is a contract.
type Resolver struct {
	detector driven.TextDetector
	fallback string
}

// NewResolver creates a resolver using the given statistical detector.
// A nil detector disables the detection layer; meta-tag sniffing and
// the fixed default still apply.
func NewResolver(detector driven.TextDetector) *Resolver {
	return &Resolver{
		detector: detector,
		fallback: DefaultCharset,
	}
}

// SetDefaultCharset replaces the fixed fallback encoding. Unsupported
// names are ignored and the previous fallback is kept.
func (r *Resolver) SetDefaultCharset(name string) {
	if !IsSupported(name) {
		logger.Warn("ignoring unsupported default charset %q", name)
		return
	}
	r.fallback = name
}

// Resolve determines the character encoding of the stream behind br and
// records the decision on meta. Exactly one content-encoding value is
// written per call, reflecting the winning layer; content-language and
// language are written only when the winning detection candidate
// carried a language.
//
// br is only peeked, never consumed: after Resolve returns, reads from
// br continue from the same position. Resolve never fails on
// unsupported or unknown encoding names; the only returned errors are
// I/O errors from the underlying stream.
func (r *Resolver) Resolve(br *bufio.Reader, meta *domain.Metadata) (domain.ResolvedEncoding, error) {
	strategies := []func(*bufio.Reader, *domain.Metadata) (*domain.ResolvedEncoding, error){
		r.fromMetaTag,
		r.fromDetection,
		r.fromDefault,
	}

	for _, strategy := range strategies {
		res, err := strategy(br, meta)
		if err != nil {
			return domain.ResolvedEncoding{}, err
		}
		if res == nil {
			continue
		}
		meta.Set(domain.MetaContentEncoding, res.Name)
		if res.Language != "" {
			meta.Set(domain.MetaContentLanguage, res.Language)
			meta.Set(domain.MetaLanguage, res.Language)
		}
		logger.Debug("resolved encoding %q (language %q)", res.Name, res.Language)
		return *res, nil
	}

	// Unreachable: fromDefault always produces a result.
	return domain.ResolvedEncoding{}, errors.New("charset: no strategy produced a result")
}

// fromMetaTag is the highest-precedence layer: a charset declared in a
// meta http-equiv tag within the sniff window wins outright.
func (r *Resolver) fromMetaTag(br *bufio.Reader, _ *domain.Metadata) (*domain.ResolvedEncoding, error) {
	declared, err := SniffMetaCharset(br)
	if err != nil {
		return nil, err
	}
	if declared == "" {
		return nil, nil
	}
	return &domain.ResolvedEncoding{Name: declared}, nil
}

// fromDetection runs statistical detection over a bounded prefix,
// seeded with any declared encoding, and takes the first supported
// candidate in confidence order. Declared values are frequently wrong,
// so the seed is a prior for the detector, not an automatic answer.
func (r *Resolver) fromDetection(br *bufio.Reader, meta *domain.Metadata) (*domain.ResolvedEncoding, error) {
	if r.detector == nil {
		return nil, nil
	}

	buf, err := br.Peek(DetectBufferSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	if len(buf) == 0 {
		return nil, nil
	}

	candidates, err := r.detector.DetectAll(buf, r.declaredCharset(meta))
	if err != nil {
		// Detection failure is not an ingestion failure; fall through.
		logger.Debug("charset detection failed: %v", err)
		return nil, nil
	}

	for _, c := range candidates {
		if !IsSupported(c.Charset) {
			logger.Debug("skipping unsupported detected charset %q", c.Charset)
			continue
		}
		return &domain.ResolvedEncoding{Name: c.Charset, Language: c.Language}, nil
	}
	return nil, nil
}

// fromDefault is the terminal layer and always yields an encoding.
func (r *Resolver) fromDefault(_ *bufio.Reader, _ *domain.Metadata) (*domain.ResolvedEncoding, error) {
	name := r.fallback
	if !IsSupported(name) {
		name = platformCharset
	}
	return &domain.ResolvedEncoding{Name: name}, nil
}

// declaredCharset returns the encoding asserted out-of-band, if any:
// a previously recorded content-encoding value, else the charset
// parameter of the content-type hint. Content-type values are only
// used when the runtime recognises them.
func (r *Resolver) declaredCharset(meta *domain.Metadata) string {
	if declared := meta.Get(domain.MetaContentEncoding); declared != "" {
		return declared
	}

	contentType := meta.Get(domain.MetaContentType)
	if contentType == "" {
		return ""
	}
	m := contentTypeCharsetPattern.FindStringSubmatch(contentType)
	if m == nil {
		return ""
	}

	declared := strings.TrimSpace(m[1])
	if !IsSupported(declared) {
		logger.Debug("ignoring unsupported declared charset %q", declared)
		return ""
	}
	return declared
}
