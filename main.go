package main

import (
	"os"

	"github.com/abhisek/adept/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
