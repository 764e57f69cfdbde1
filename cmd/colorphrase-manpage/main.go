// Command colorphrase-manpage writes the colorphrase(1) man page to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/colorphrase/cmd/colorphrase"
	"github.com/arthur-debert/colorphrase/internal/version"
)

func main() {
	header := &doc.GenManHeader{
		Title:   "COLORPHRASE",
		Section: "1",
		Source:  "colorphrase " + version.Version,
		Manual:  "colorphrase manual",
	}

	if err := doc.GenMan(colorphrase.NewRootCmd(), header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
