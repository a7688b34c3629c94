// Command yardcore computes network-effect multipliers and replays frame-rate
// scenarios against the quality tier controller.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
