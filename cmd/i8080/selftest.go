package main

import (
	"fmt"

	"github.com/oisee/i8080/pkg/difftest"
	"github.com/spf13/cobra"
)

func newSelftestCmd() *cobra.Command {
	var workers int
	var perWorker int
	var seed int64

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the randomized invariant-fuzzing harness and report any divergence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := difftest.Config{
				NumWorkers:      workers,
				InstructionsPer: perWorker,
				Seed:            seed,
			}
			pool := difftest.NewWorkerPool(cfg)
			fmt.Printf("i8080 selftest: %d workers x %d instructions\n", workers, perWorker)
			report := pool.Run()
			fmt.Printf("checked %d instructions\n", report.Checked())
			if report.Clean() {
				fmt.Println("no divergences found")
				return nil
			}
			for _, d := range report.Divergences() {
				fmt.Printf("[worker %d seed %d #%d] %s: %s\n", d.Worker, d.Seed, d.Instruction, d.Rule, d.Detail)
			}
			return fmt.Errorf("selftest: %d divergence(s) found", len(report.Divergences()))
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "number of fuzz workers (0 = NumCPU)")
	cmd.Flags().IntVar(&perWorker, "per-worker", 20000, "random instructions checked per worker")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base RNG seed")
	return cmd
}
