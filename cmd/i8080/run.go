package main

import (
	"fmt"
	"time"

	"github.com/oisee/i8080/pkg/machine"
	"github.com/oisee/i8080/pkg/rom"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var base uint16
	var seconds float64
	var reportEvery int

	cmd := &cobra.Command{
		Use:   "run <rom>",
		Short: "Load a ROM and run it headlessly, pacing half-frames against wall-clock time",
		Long: "Runs headlessly with no video output, pacing the CPU core at 120\n" +
			"half-frames per second and injecting RST 1/RST 2 at each boundary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ports := machine.NewPortSet()
			m := machine.New(ports)
			if err := rom.LoadFile(m.Mem, base, args[0]); err != nil {
				return err
			}

			fmt.Printf("i8080: loaded %s at $%04X\n", args[0], base)
			stop := make(chan struct{})
			if seconds > 0 {
				time.AfterFunc(time.Duration(seconds*float64(time.Second)), func() { close(stop) })
			}

			done := make(chan error, 1)
			go func() { done <- m.RunRealtime(stop) }()

			ticker := time.NewTicker(time.Duration(reportEvery) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case err := <-done:
					fmt.Printf("i8080: stopped, %d cycles executed\n", m.CPU.Cycles)
					return err
				case <-ticker.C:
					fmt.Printf("i8080: %d cycles, PC=$%04X\n", m.CPU.Cycles, m.CPU.PC)
				}
			}
		},
	}

	cmd.Flags().Uint16Var(&base, "base", 0x0000, "address to load the ROM at")
	cmd.Flags().Float64Var(&seconds, "seconds", 0, "stop after this many seconds (0 = run until interrupted)")
	cmd.Flags().IntVar(&reportEvery, "report-every", 5, "seconds between progress reports")
	return cmd
}
