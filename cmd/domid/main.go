// Package main provides the domid binary: a command-line front end for
// building, checking and parsing structured element identifiers.
package main

import (
	"context"
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "domid"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
