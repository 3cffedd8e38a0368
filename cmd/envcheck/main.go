// Package main provides the entry point for the envcheck CLI.
package main

import (
	"os"

	"github.com/envcheck/envcheck/cmd/envcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
