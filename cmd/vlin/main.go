package main

import (
	"os"

	"github.com/hdltools/vlin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
