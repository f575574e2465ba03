// Package sim provides clock drift simulation over [tai.Span] values.
package sim

import (
	"math"

	"github.com/curtisnewbie/tai"
	"gonum.org/v1/gonum/stat/distuv"
)

// ClockNoise adds simulated clock drift to a given [tai.Span] measurement.
//
// For example, if a vehicle is measuring the time of flight of a signal with a
// high precision oscillator, the engineering specifications will include the
// oscillator stability. This stability bounds the preciseness of time span
// calculations. On very short time spans, i.e. less than a few minutes, clock
// drift is usually negligible, but in high fidelity systems the drift may lead
// to a significant error (e.g. several kilometers in two-way radar ranging).
// ClockNoise allows simulation systems to test the resilience of algorithms
// against oscillator stability.
//
// The constructors are specified in parts per million; for a parts per billion
// specification simply multiply the value by 1e-3.
//
// NOTE: clock stability is not linear. A clock rated stable within 15 ppm per
// fifteen minute interval does *not* correspond to 1 ppm per minute.
//
// Samples are drawn from the process-wide random source, one independent
// Normal draw per span-sized chunk of the measurement.
type ClockNoise struct {
	dist distuv.Normal
	span float64
}

func withPpmOver(ppm float64, span float64) ClockNoise {
	return ClockNoise{
		dist: distuv.Normal{Mu: span, Sigma: ppm * 1e-6},
		span: span,
	}
}

// Create new ClockNoise from the stability characteristics in parts per
// million over one second.
func WithPpmOver1Sec(ppm float64) ClockNoise {
	return withPpmOver(ppm, 1.0)
}

// Create new ClockNoise from the stability characteristics in parts per
// million over one minute (i.e. 60 seconds).
func WithPpmOver1Min(ppm float64) ClockNoise {
	return withPpmOver(ppm, 60.0)
}

// Create new ClockNoise from the stability characteristics in parts per
// million over fifteen minutes (i.e. 900 seconds).
func WithPpmOver15Min(ppm float64) ClockNoise {
	return withPpmOver(ppm, 900.0)
}

// Returns a noisy version of the provided noiseless [tai.Span].
func (c ClockNoise) NoiseUp(noiseless tai.Span) tai.Span {
	remaining := noiseless.Seconds()
	drift := 0.0
	for remaining > 0 {
		drift += c.dist.Rand()
		remaining -= c.span
	}
	if drift <= 0 {
		// spans are nonnegative, an (extremely unlikely) net negative drift
		// clamps to zero
		return tai.NewSpan(0, 0)
	}
	secs := math.Floor(drift)
	nanos := (drift - secs) * 1e9
	return tai.NewSpan(uint64(secs), uint32(nanos))
}
