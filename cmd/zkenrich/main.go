// zkenrich - enrich a ZcashMe users table
//
// A small Go CLI that adds a profile URL and a random category to every
// row of a CSV/TSV users file, writes the file back and prints the table.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/zcashme/zkenrich/internal/cli"
)

// Version information, set with
// -ldflags "-X main.version=... -X main.buildTime=..."
var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	cli.SetVersion(version, buildTime)
	if err := cli.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
