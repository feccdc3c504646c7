package main

import (
	"os"

	"github.com/msto63/dayx/cmd/dayx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
