/*
Package main - Census CLI Entry Point

==============================================================================
FILE: cmd/census/main.go
==============================================================================

DESCRIPTION:
    Entry point for the census command-line tool: a batch/offline caller of
    the extractor/reconciler/reporter pipeline, for operators who want a
    report without standing up the HTTP API.

==============================================================================
*/
package main

import "github.com/dopazo/hhr-census/cmd/census/cmd"

func main() {
	cmd.Execute()
}
