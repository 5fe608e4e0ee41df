package main

import (
	"os"

	"github.com/go-drift/animated/cmd/animated/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
