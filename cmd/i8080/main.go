// Command i8080 is the CLI harness around the core packages: load a ROM,
// run it headlessly, disassemble it, or fuzz the decode table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 CPU core — run, disassemble, and fuzz-test ROM images",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDisasmCmd())
	rootCmd.AddCommand(newSelftestCmd())
	rootCmd.AddCommand(newSnapshotCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
