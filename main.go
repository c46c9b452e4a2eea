package main

import (
	"os"

	"github.com/abhisek/papersmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
