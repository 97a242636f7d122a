package main

import (
	"os"

	"github.com/joe192839/Mindduel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
