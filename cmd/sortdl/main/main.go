package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sortdl/cmd/sortdl"
	"github.com/arthur-debert/sortdl/pkg/style"
)

func main() {
	rootCmd := sortdl.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(sortdl.ExitCode(err))
	}
}
