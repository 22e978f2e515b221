// SPDX-License-Identifier: MIT

// Command lvlalg generates algebra exercises on the terminal or serves them
// over HTTP.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvlalg/cmd/lvlalg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exit cmd.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
