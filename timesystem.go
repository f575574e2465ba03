package tai

// TimeSystem is a system for reckoning time, such as civil UTC or Modified
// Julian days, that can express itself as an [Instant] with respect to the
// TAI Epoch. The Instant is the common currency between time systems: to
// convert between two systems, go through the Instant.
type TimeSystem interface {
	AsInstant() Instant
}
