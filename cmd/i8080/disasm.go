package main

import (
	"fmt"
	"os"

	"github.com/oisee/i8080/pkg/asm"
	"github.com/spf13/cobra"
)

func newDisasmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disasm <rom>",
		Short: "Linearly disassemble a raw ROM image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("disasm: %w", err)
			}
			for _, line := range asm.Disassemble(data) {
				fmt.Println(line.String())
			}
			return nil
		},
	}
	return cmd
}
