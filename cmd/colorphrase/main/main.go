package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/colorphrase/cmd/colorphrase"
	"github.com/arthur-debert/colorphrase/pkg/ui/styles"
)

func main() {
	rootCmd := colorphrase.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !colorphrase.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
