package main

import (
	"os"

	"github.com/arthur-debert/confgen/cmd/confgen"
	"github.com/arthur-debert/confgen/pkg/output"
)

func main() {
	rootCmd := confgen.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewPrinter(os.Stderr, true).Error(err)
		os.Exit(1)
	}
}
