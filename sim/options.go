package sim

// DefaultTickStep is the fixed step size a convergence episode uses
// between deliveries (§4.3, §9): large enough to be cheap, small enough
// (being a divisor of 1) that no integer-time delivery is ever skipped.
const DefaultTickStep = 0.5

// DefaultMaxSimulatedTime is the hard safety bound (§4.3, §9, §7
// ConvergenceCutoff) on how far a convergence episode advances
// time_from_start before giving up regardless of queue state.
const DefaultMaxSimulatedTime = 100.0

// Option configures a Simulation at construction time.
type Option func(*Simulation)

// WithTickStep overrides the step size used by a convergence episode.
// Panics if step is not positive — this is a constructor-time
// configuration error, not a runtime condition.
func WithTickStep(step float64) Option {
	if step <= 0 {
		panic(ErrBadTickStep.Error())
	}
	return func(s *Simulation) { s.tickStep = step }
}

// WithMaxSimulatedTime overrides the hard cap on simulated time. Panics
// if max is not positive.
func WithMaxSimulatedTime(max float64) Option {
	if max <= 0 {
		panic(ErrBadMaxSimulatedTime.Error())
	}
	return func(s *Simulation) { s.maxSimulatedTime = max }
}
