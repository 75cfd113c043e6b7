package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/vsl"
)

func newBenchCmd() *cobra.Command {
	var (
		n          int
		mode       string
		seed       uint64
		memprofile string
	)
	cmd := &cobra.Command{
		Use:   "bench [func...]",
		Short: "Time the Float4 math kernels",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := vsl.ParseMode(mode)
			if err != nil {
				return err
			}
			funcs := vsl.Unaries()
			if len(args) > 0 {
				funcs = funcs[:0:0]
				for _, name := range args {
					u, ok := vsl.LookupUnary(name)
					if !ok {
						return fmt.Errorf("unknown function %q", name)
					}
					funcs = append(funcs, u)
				}
			}
			if memprofile != "" {
				runtime.MemProfileRate = 1
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s mode, %s iterations\n", m, humanize.Comma(int64(n)))
			for _, u := range funcs {
				rng := vsl.NewRandFloat4(0.25, 4, vsl.WithSeed(seed))
				var sink vsl.Float4
				start := time.Now()
				for i := 0; i < n; i++ {
					sink = sink.Add(u.Float4(rng.Next(), m))
				}
				per := time.Since(start) / time.Duration(max(n, 1))
				fmt.Fprintf(out, "%-10s %10v/op  sum %v\n", u.Name, per, sink.Sum())
			}

			if memprofile == "" {
				return nil
			}
			f, err := os.Create(memprofile)
			if err != nil {
				return err
			}
			defer f.Close()
			runtime.GC()
			return pprof.WriteHeapProfile(f)
		},
	}
	cmd.Flags().IntVarP(&n, "iterations", "n", 100000, "iterations per function")
	cmd.Flags().StringVar(&mode, "mode", "approx", "exact or approx")
	cmd.Flags().Uint64Var(&seed, "seed", vsl.DefaultSeed, "generator seed")
	cmd.Flags().StringVar(&memprofile, "memprofile", "", "write a heap profile to this file")
	return cmd
}
