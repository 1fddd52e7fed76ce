// Package main implements the kata CLI.
// It evaluates the squares, grains and lasagna exercises from the command line.
package main

import (
	"os"

	"github.com/l3aro/go-katas/cmd/kata/commands"
)

var version = "dev"

func main() {
	if err := commands.Execute(version); err != nil {
		os.Exit(1)
	}
}
