// Package main is the entry point for the rulesnap CLI.
package main

import "rulesnap.dev/pkg/rulesnap/cmd"

func main() {
	cmd.Execute()
}
