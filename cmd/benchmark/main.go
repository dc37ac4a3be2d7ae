// Command benchmark drives repeated fixed-base multiexponentiations
// over a chosen curve and reports timing, the CLI surface spec.md §6
// names as "out of core but stable": benchmark <curve> <n>
// <num_samples> <num_outputs> <element_nbytes> <verbose>.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	os.Exit(0)
}
