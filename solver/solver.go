package solver

import (
	"fmt"

	"github.com/katalvlaran/adaptivepath/dijkstra"
	"github.com/katalvlaran/adaptivepath/env"
	"github.com/katalvlaran/adaptivepath/estimator"
)

// Run drives one full session against env: for every query it searches
// the estimator's current cost model for a shortest path, submits it,
// and inserts the resulting record before moving on to the next query.
// There is no retry — any error from env or the estimator is fatal and
// is returned immediately.
func Run(e env.Environment, est *estimator.Estimator) error {
	for {
		query, ok := e.NextQuery()
		if !ok {
			return nil
		}

		path, _ := dijkstra.Search(est.Cost, query.Src, query.Dest)

		response, err := e.SubmitPath(path)
		if err != nil {
			return fmt.Errorf("solver: submitting path: %w", err)
		}

		if err := est.InsertRecord(query, path, response); err != nil {
			return fmt.Errorf("solver: recording round: %w", err)
		}
	}
}
