package main

import (
	"encoding/json"
	"fmt"

	"github.com/oisee/i8080/pkg/machine"
	"github.com/oisee/i8080/pkg/rom"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	var base uint16
	var count int

	cmd := &cobra.Command{
		Use:   "snapshot <rom>",
		Short: "Run N instructions and dump the architectural state as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := machine.New(machine.NewPortSet())
			if err := rom.LoadFile(m.Mem, base, args[0]); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				m.CPU.Step()
			}
			snap := m.CPU.Snapshot()
			out, err := json.MarshalIndent(struct {
				PC, SP                 uint16
				A, B, C, D, E, H, L, F uint8
				IFF, Halted            bool
				Cycles                 uint64
			}{snap.PC, snap.SP, snap.A, snap.B, snap.C, snap.D, snap.E, snap.H, snap.L, snap.F, snap.IFF, snap.Halted, snap.Cycles}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().Uint16Var(&base, "base", 0x0000, "address to load the ROM at")
	cmd.Flags().IntVar(&count, "count", 1000, "number of instructions to execute before snapshotting")
	return cmd
}
