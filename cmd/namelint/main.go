// Package main provides the namelint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/namelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
