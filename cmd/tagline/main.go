package main

import (
	"os"

	"github.com/arthur-debert/tagline/pkg/printer"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_ = printer.Errmsg(err.Error())
		os.Exit(1)
	}
}
