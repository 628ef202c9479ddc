package core

// RateConfig describes the update-rate range a simulation advertises, in
// steps per second. The bounds size the host's rate slider; they are
// advisory and never enforced against the scheduler.
type RateConfig struct {
	Min     float64
	Max     float64
	Default float64
}

// DefaultRateConfig returns a conservative range suitable for simulations
// that do not declare their own.
func DefaultRateConfig() RateConfig {
	return RateConfig{Min: 1, Max: 10000, Default: 60}
}
