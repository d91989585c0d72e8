// Package main is the entry point for the arbctl CLI client.
package main

import (
	"arbitrack/cmd/arbctl/cmd"
)

func main() {
	cmd.Execute()
}
