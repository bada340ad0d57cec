// Command erp runs the fbr-erp API server and exposes the identifier and
// formatting utilities on the command line.
//
//	erp serve
//	erp check ntn 1234567
//	erp format currency 1234.5 --json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Invalid identifiers have already been reported on stdout.
		if !errors.Is(err, errInvalidIdentifier) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
