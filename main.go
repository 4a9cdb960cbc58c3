package main

import (
	"os"

	"github.com/halehq/hale/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
