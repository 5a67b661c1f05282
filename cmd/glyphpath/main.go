// Package main is the entry point for the glyphpath CLI.
package main

import (
	"fmt"
	"os"

	"github.com/glyphpath/glyphpath/cmd/glyphpath/commands"
	"github.com/glyphpath/glyphpath/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		os.Exit(errors.ExitSuccess)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
