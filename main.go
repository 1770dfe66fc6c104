package main

import (
	"os"

	"github.com/iphase-tech/iphase-site/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
