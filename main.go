package main

import (
	"os"

	"github.com/PolarWolf314/zz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
