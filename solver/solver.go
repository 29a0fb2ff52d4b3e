// Package solver implements the minimum flip steps algorithm.
package solver

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/go-ricrob/lightsolver/lights"
)

// NoLimit disables the step limit.
const NoLimit = -1

// Runner runs a solve.
type Runner interface {
	Run() *Result
}

var _ Runner = (*solver)(nil)

// ProgressFunc is called after every flip with the number of steps done,
// the flipped light and the resulting lights.
type ProgressFunc func(step, idx int, state lights.Lights)

// Option configures a solver.
type Option func(s *solver)

// WithLimit stops the solve after limit flips. A negative limit means no limit.
func WithLimit(limit int) Option { return func(s *solver) { s.limit = limit } }

// WithLogger sets the logger of the solver.
func WithLogger(logger *zap.Logger) Option {
	return func(s *solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress registers fn to be called after every flip.
func WithProgress(fn ProgressFunc) Option { return func(s *solver) { s.progress = fn } }

type solver struct {
	start, target lights.Lights
	limit         int
	logger        *zap.Logger
	progress      ProgressFunc
}

// New returns a Runner transforming start into target.
func New(start, target lights.Lights, opts ...Option) Runner {
	s := &solver{
		start:  start,
		target: target,
		limit:  NoLimit,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pending is the stack of lights still waiting to be flipped.
type pending []int

func (p *pending) push(idx int) { *p = append(*p, idx) }

func (p *pending) pop() int {
	idx := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return idx
}

func (p pending) contains(idx int) bool { return slices.Contains(p, idx) }

func (s *solver) limitReached(steps int) bool { return s.limit >= 0 && steps >= s.limit }

func (s *solver) Run() *Result {
	logger := s.logger.With(zap.Stringer("start", s.start), zap.Stringer("target", s.target))

	if s.start == s.target {
		return s.done(logger, &Result{Outcome: Solved, Final: s.start})
	}
	if s.start.Len() != s.target.Len() {
		return s.done(logger, &Result{Outcome: NoSolution})
	}

	state := s.start
	steps := 0

	var toFlip pending
	idx, _ := state.FirstDifferentIndex(s.target, 0)
	toFlip.push(idx)

	for len(toFlip) != 0 {
		if s.limitReached(steps) {
			logger.Warn("step limit reached", zap.Int("limit", s.limit), zap.Int("steps", steps))
			return s.done(logger, &Result{Outcome: LimitReached, Steps: steps, Final: state})
		}

		candidate := toFlip.pop()
		for {
			need, ok := state.NeedLightToFlip(candidate)
			if !ok || toFlip.contains(need) {
				break
			}
			toFlip.push(candidate)
			candidate = need
		}

		if err := state.Flip(candidate); err != nil {
			logger.Error("flip failed", zap.Int("light", candidate), zap.Error(err))
			return s.done(logger, &Result{Outcome: Aborted, Steps: steps, Final: state, Err: err})
		}

		if len(toFlip) == 0 {
			if idx, ok := state.FirstDifferentIndex(s.target, 0); ok {
				toFlip.push(idx)
			}
		}
		steps++

		if s.progress != nil {
			s.progress(steps, candidate, state)
		}
	}
	return s.done(logger, &Result{Outcome: Solved, Steps: steps, Final: state})
}

func (s *solver) done(logger *zap.Logger, r *Result) *Result {
	logger.Debug("solve finished", zap.Stringer("outcome", r.Outcome), zap.Int("steps", r.Steps))
	return r
}

// MinSteps returns the number of flips transforming start into target,
// stopping after limit flips (negative: no limit). ok is false if start and
// target differ in length.
// Reaching the limit is not reported: the flips done so far are returned.
// Use New and Result.Outcome to tell a partial count from a solution.
func MinSteps(start, target lights.Lights, limit int) (steps int, ok bool) {
	r := New(start, target, WithLimit(limit)).Run()
	if r.Outcome == NoSolution {
		return 0, false
	}
	return r.Steps, true
}
