package main

import (
	"fmt"
	"os"

	"github.com/gnoverse/alice/cmd"
)

func main() {
	err := cmd.Execute()
	code := cmd.ExitCode(err)
	if code == 2 {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}
