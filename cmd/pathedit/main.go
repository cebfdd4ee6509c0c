// Package main provides the entry point for the pathedit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/yamledit/pathedit/cmd/pathedit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
