package main

import (
	"os"

	"github.com/nourlabs/coach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
