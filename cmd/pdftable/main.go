// Package main provides the pdftable command.
package main

import (
	"os"

	"github.com/tsawler/pdftable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
