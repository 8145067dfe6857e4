// Package charset decides which character encoding to use for an HTML
// byte stream of uncertain provenance.
//
// Resolution layers a bounded meta-tag sniff, statistical byte-pattern
// detection seeded with declared hints, and a fixed fallback into a
// strict precedence chain; the first layer that produces a supported
// encoding wins. The package never consumes bytes from the stream it
// inspects: callers hand it a bufio.Reader and keep reading from the
// same position afterwards.
package charset
