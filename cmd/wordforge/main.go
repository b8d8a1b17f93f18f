package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "format":
		cmdFormat(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "interactive":
		cmdInteractive(os.Args[2:])
	case "runs":
		cmdRuns(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: wordforge <command>

Commands:
  format       Format one raw query file for a language/data-type pair
  export       Export datasets for languages × data types
  interactive  Configure and run an export interactively
  runs         List recent export runs
  serve        Serve exported datasets over HTTP or MCP
`)
}
