package lottery

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome pairs a case with either its result or its rejection error.
type Outcome struct {
	Case   Case
	Result CaseResult
	Err    error
}

// RunCases evaluates every case against the engine and returns outcomes in
// input order. Cases share no mutable state, so each one runs in its own
// goroutine with no coordination beyond collecting results. A case whose
// policy fails validation carries its own error and does not disturb its
// siblings.
func RunCases(e *Engine, cases []Case) []Outcome {
	outcomes := make([]Outcome, len(cases))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			result, err := e.Run(c)
			outcomes[i] = Outcome{Case: c, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
