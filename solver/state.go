package solver

import (
	"fmt"

	"github.com/go-ricrob/lightsolver/lights"
)

// Outcome tells how a solve ended.
type Outcome int

// Outcomes.
const (
	// Solved: the lights match the target.
	Solved Outcome = iota
	// LimitReached: the step limit stopped the solve, Steps is a partial count.
	LimitReached
	// Aborted: a flip failed, Steps is the count up to the failure.
	Aborted
	// NoSolution: start and target differ in length.
	NoSolution
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case LimitReached:
		return "limit reached"
	case Aborted:
		return "aborted"
	case NoSolution:
		return "no solution"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the solver result.
type Result struct {
	Outcome Outcome
	Steps   int
	// Final holds the lights when the solve ended. Unset for NoSolution.
	Final lights.Lights
	// Err is the flip error of an Aborted solve.
	Err error
}

// Solved reports whether the target was reached.
func (r *Result) Solved() bool { return r.Outcome == Solved }
