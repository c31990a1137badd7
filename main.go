package main

import (
	"os"

	"github.com/mathspiral/mathspiral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
