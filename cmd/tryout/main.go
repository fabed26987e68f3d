// Command tryout runs one local session against simulator.Simulator and
// prints a per-turn diagnostic table plus the session's aggregate score.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/adaptivepath/env"
	"github.com/katalvlaran/adaptivepath/estimator"
	"github.com/katalvlaran/adaptivepath/grid"
	"github.com/katalvlaran/adaptivepath/simulator"
	"github.com/katalvlaran/adaptivepath/solver"
)

const sessionTimeLimit = 2 * time.Second

// recordingEnvironment wraps a *simulator.Simulator and, when an output
// path is set, appends every submitted path as a {U,D,L,R} line — the
// same optional trace tryout has always produced.
type recordingEnvironment struct {
	*simulator.Simulator
	out *os.File
}

func (r *recordingEnvironment) SubmitPath(path []grid.Direction) (uint32, error) {
	if r.out != nil {
		var sb strings.Builder
		for _, d := range path {
			sb.WriteString(d.String())
		}
		sb.WriteByte('\n')
		if _, err := r.out.WriteString(sb.String()); err != nil {
			return 0, fmt.Errorf("tryout: writing trace: %w", err)
		}
	}
	return r.Simulator.SubmitPath(path)
}

var _ env.Environment = (*recordingEnvironment)(nil)

func newRootCmd() *cobra.Command {
	var seed uint64
	var output string

	cmd := &cobra.Command{
		Use:   "tryout",
		Short: "Run one local session against the simulator and print a diagnostic summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out *os.File
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("tryout: creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			sim := simulator.FromSeed(seed)
			re := &recordingEnvironment{Simulator: sim, out: out}
			est := estimator.New(sessionTimeLimit)

			if err := solver.Run(re, est); err != nil {
				return err
			}

			for i, detail := range sim.ScoreDetails() {
				q, _ := sim.QueryAt(i)
				fmt.Printf("width: %2d, height: %2d -> best: %6d, length: %6d, ratio: %.3f\n",
					q.Width(), q.Height(), detail.Best, detail.Length, detail.Ratio())
			}

			log.Info().Uint64("seed", seed).Float64("ratio", sim.RatioScore()).
				Int("d", sim.NoiseBand()).Bool("tworegime", sim.TwoRegime()).
				Msg("session complete")
			fmt.Printf("score: %.6f\n", sim.RatioScore())

			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed to generate the ground-truth grid and query sequence")
	cmd.Flags().StringVar(&output, "output", "", "optional file to write every submitted path to, one per line")

	return cmd
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("tryout failed")
		os.Exit(1)
	}
}
