// Package main is the entry point for vzconf.
package main

import (
	"fmt"
	"os"

	"github.com/javanstorm/vzconf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
