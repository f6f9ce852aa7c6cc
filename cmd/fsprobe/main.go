// Package main implements the fsprobe executable.
package main

import (
	"os"

	"github.com/d-kuro/fsprobe/internal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
