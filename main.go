// Package main is the entry point for the mutman CLI.
package main

import "mutman.dev/pkg/mutman/cmd"

func main() {
	cmd.Execute()
}
