// Package for precise time handling with respect to the TAI Epoch (01 Jan 1900, midnight).
//
// The core type in this package is [Instant], the single canonical representation of a point
// in time that every other time system converts through. An [Instant] pairs a nonnegative
// [Span] with an [Era] tag, which makes it possible to represent instants arbitrarily far
// before or after the epoch without signed arithmetic, e.g.,
//
//	epoch := tai.NewInstant(0, 0, tai.Present)
//	before := tai.NewInstant(159, 0, tai.Past)
//	after := before.Add(tai.NewSpan(160, 0)) // 1s after the epoch, era flipped to Present
//
// [Instant] supports adding and subtracting a [Span] (crossing the epoch flips the era),
// and subtracting another [Instant] (see [Instant.Since]) which yields signed floating
// point seconds.
//
// Civil UTC and Modified Julian day representations built on top of [Instant] live in the
// utc and julian sub packages, both implement [TimeSystem]. Gaussian clock-drift
// simulation over [Span] values lives in the sim sub package.
package tai
