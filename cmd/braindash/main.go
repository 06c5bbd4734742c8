package main

import (
	"os"

	"github.com/braindash/braindash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
