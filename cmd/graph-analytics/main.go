// Command graph-analytics runs analyses over in-memory graphs: synthetic
// benchmarks, one-off analyses of graph files, and a listing of the
// supported analysis kinds.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
