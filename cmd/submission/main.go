// Command submission is the contest entrypoint: it speaks the
// line-oriented stdio protocol on stdin/stdout and exits non-zero on any
// protocol or estimator error.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/adaptivepath/env/wire"
	"github.com/katalvlaran/adaptivepath/estimator"
	"github.com/katalvlaran/adaptivepath/solver"
)

// sessionTimeLimit is the contest's overall wall-clock budget, divided
// across the 1000 rounds by estimator.Estimator.InsertRecord.
const sessionTimeLimit = 2 * time.Second

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submission",
		Short: "Run the adaptive shortest-path solver against the judge's stdio protocol",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := wire.New(os.Stdin, os.Stdout)
			if err != nil {
				return err
			}
			est := estimator.New(sessionTimeLimit)
			if err := solver.Run(e, est); err != nil {
				return err
			}
			return nil
		},
	}
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("submission failed")
		os.Exit(1)
	}
}
