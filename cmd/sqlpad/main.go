// Package main provides the CLI entrypoint for SQLPad.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlpad/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
