package main

import (
	"fmt"
	"os"

	"github.com/abhisek/stratiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stratiz:", err)
		os.Exit(1)
	}
}
