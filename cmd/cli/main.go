// Package main is the entry point for cover-quote CLI.
package main

import (
	"os"

	"cover-quote/cmd/cli/cmd"
	"cover-quote/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.IsType(err, errors.TypeInvalidRequest) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
