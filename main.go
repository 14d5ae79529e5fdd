package main

import (
	"os"

	"github.com/todolabs/rocketd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
