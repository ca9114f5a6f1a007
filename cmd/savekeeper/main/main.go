package main

import (
	"os"

	savekeeper "github.com/arthur-debert/savekeeper/cmd/savekeeper"
)

func main() {
	if err := savekeeper.Execute(); err != nil {
		os.Exit(1)
	}
}
