package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/sortdl/cmd/sortdl"
	"github.com/arthur-debert/sortdl/internal/version"
)

func main() {
	rootCmd := sortdl.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SORTDL",
		Section: "1",
		Source:  "sortdl " + version.Version,
		Manual:  "sortdl manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
