package charset

import (
	"bufio"
	"errors"
	"io"
	"regexp"
)

// MetaTagBufferSize bounds how far into the stream the meta-tag sniff
// looks. Declarations beyond this point are ignored.
const MetaTagBufferSize = 4096

// httpEquivCharsetPattern matches a meta http-equiv content-type tag
// carrying a charset parameter. Tolerant of quote style, whitespace,
// and case; the markup is treated as 7-bit-clean text, so any encoding
// that is an ASCII superset can declare itself this way.
var httpEquivCharsetPattern = regexp.MustCompile(
	`(?i)<meta\s+http-equiv\s*=\s*['"]?\s*content-type\s*['"]?\s+` +
		`content\s*=\s*['"]?[^'">]*?;\s*charset\s*=\s*([^'"\s/>]+)`)

// SniffMetaCharset scans the first MetaTagBufferSize bytes of br for an
// embedded charset declaration and returns the declared name if it is
// one the runtime supports, or "" otherwise. The reader's position is
// unchanged: the scan peeks, it never consumes. Only I/O errors from
// the underlying stream are returned; a malformed or missing
// declaration is simply "".
func SniffMetaCharset(br *bufio.Reader) (string, error) {
	buf, err := br.Peek(MetaTagBufferSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return "", err
	}
	if len(buf) == 0 {
		return "", nil
	}

	m := httpEquivCharsetPattern.FindSubmatch(buf)
	if m == nil {
		return "", nil
	}

	declared := string(m[1])
	if !IsSupported(declared) {
		return "", nil
	}
	return declared, nil
}
