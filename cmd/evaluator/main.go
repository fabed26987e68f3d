// Command evaluator runs N independent sessions against the simulator
// over seeds 0..N, spread across a bounded worker pool, and reports the
// mean and standard deviation of their ratio scores.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/adaptivepath/estimator"
	"github.com/katalvlaran/adaptivepath/simulator"
	"github.com/katalvlaran/adaptivepath/solver"
)

const sessionTimeLimit = 2 * time.Second

func runSession(seed uint64) (float64, error) {
	sim := simulator.FromSeed(seed)
	est := estimator.New(sessionTimeLimit)
	if err := solver.Run(sim, est); err != nil {
		return 0, err
	}
	return sim.RatioScore(), nil
}

func newRootCmd() *cobra.Command {
	var num uint64
	var concurrency int

	cmd := &cobra.Command{
		Use:   "evaluator",
		Short: "Evaluate the solver over many seeds and report mean/stddev ratio score",
		RunE: func(cmd *cobra.Command, args []string) error {
			scores := make([]float64, num)

			g, _ := errgroup.WithContext(context.Background())
			g.SetLimit(concurrency)

			for seed := uint64(0); seed < num; seed++ {
				seed := seed
				g.Go(func() error {
					score, err := runSession(seed)
					if err != nil {
						return err
					}
					scores[seed] = score
					log.Info().Uint64("seed", seed).Float64("ratio", score).Msg("session complete")
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			mean := stat.Mean(scores, nil)
			sd := stat.StdDev(scores, nil)
			log.Info().Float64("mean", mean).Float64("sd", sd).Msg("evaluation complete")

			return nil
		},
	}

	cmd.Flags().Uint64Var(&num, "num", 100, "number of test cases, evaluated over seeds 0..num")
	cmd.Flags().IntVar(&concurrency, "concurrency", 5, "number of sessions to run concurrently")

	return cmd
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("evaluator failed")
		os.Exit(1)
	}
}
