// Package file provides file-based configuration storage using TOML.
//
// Recognised keys:
//
//   - default_charset: overrides the fixed fallback encoding used when
//     every resolution layer fails (default "windows-1252")
//   - verbose: enables verbose logging without the --verbose flag
package file
