// Command docsift ingests HTML documents: it resolves character
// encodings, filters markup through a safe-element policy, and emits
// clean text or XHTML.
package main

import (
	"os"

	"github.com/docsift/docsift/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
