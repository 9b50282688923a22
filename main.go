package main

import (
	"os"

	"github.com/edlight/skafo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
