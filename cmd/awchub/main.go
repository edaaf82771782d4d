// Package main is the entry point for the awchub CLI tool.
package main

import (
	"os"

	"github.com/awc-hub/awchub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
