// Package main is the entry point for the arbitrack server.
package main

import (
	"os"

	"arbitrack/cmd/arbitrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
