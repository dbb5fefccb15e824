// Command ethevents hashes, decodes and inspects Ethereum bridge events
// offline, using the same canonical encoding as the events API.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
