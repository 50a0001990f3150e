// Package main is the entry point for the mkcommit CLI application.
//
// The main package is kept minimal. All the actual logic lives in other packages
// (especially internal/commands).
package main

import (
	"os"

	"github.com/wlame/mkcommit/internal/commands"
)

func main() {
	// Non-zero exit codes tell git (and the calling hook) that the message was rejected
	if err := commands.Execute(); err != nil {
		commands.PrintError(err)
		os.Exit(1)
	}
}
