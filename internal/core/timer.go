package core

// maxStepsPerPass bounds how many updates a single Advance may issue when
// catching up after a stall or a very low rate.
const maxStepsPerPass = 5000

// FixedStep converts variable per-frame elapsed time into a deterministic
// number of simulation steps at a target rate. Leftover time carries across
// frames in the accumulator.
type FixedStep struct {
	rate        float64
	accumulator float64
}

// NewFixedStep constructs a FixedStep controller targeting the given rate
// in steps per second.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the target rate. It takes effect on the next Advance and
// does not rescale time already accumulated.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		rate = 60
	}
	f.rate = rate
}

// Rate returns the current target rate.
func (f *FixedStep) Rate() float64 { return f.rate }

// Debt returns the accumulated time not yet spent on steps, in seconds.
func (f *FixedStep) Debt() float64 { return f.accumulator }

// Advance adds the elapsed frame time dt (seconds) to the accumulator and
// invokes step once per whole step duration owed, up to the catch-up cap.
// It returns the number of steps issued. Callers pause by not calling it.
func (f *FixedStep) Advance(dt float64, step func()) int {
	if dt > 0 {
		f.accumulator += dt
	}
	stepDuration := 1 / f.rate
	steps := 0
	for f.accumulator >= stepDuration && steps < maxStepsPerPass {
		step()
		f.accumulator -= stepDuration
		steps++
	}
	return steps
}
