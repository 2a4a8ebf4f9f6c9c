// Package main provides the ldforge CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/ldforge/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
