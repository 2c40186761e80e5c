package main

import (
	"os"

	"github.com/hochfrequenz/fristenkalender/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
