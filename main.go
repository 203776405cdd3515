// main.go
//
// Entry point for the blockqueue console.
// Configuration, logging and the session loop are set up by internal/cli.

package main

import "github.com/robalobadob/blockqueue/internal/cli"

func main() {
	cli.Execute()
}
