package main

import (
	"fmt"
	"os"

	app "github.com/davrell/taskdeck/internal"
	"github.com/davrell/taskdeck/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	a, err := app.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing taskdeck: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = a.Close() }()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
