// ==============================================================================================
// FILE: cmd/glade/main.go
// PURPOSE: Entry point for the glade CLI binary.
// ==============================================================================================

package main

import (
	"fmt"
	"os"

	"github.com/glade-lang/glade/cmd/glade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
