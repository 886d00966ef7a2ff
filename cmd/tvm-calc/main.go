package main

import (
	"os"

	"github.com/quantfold/tvm/cmd/tvm-calc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
