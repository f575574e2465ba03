// Package julian provides Julian and Modified Julian day representations built
// on top of [tai.Instant].
package julian

import (
	"strconv"

	"github.com/curtisnewbie/tai"
)

const (
	// Modified Julian day of the TAI Epoch, 1900-01-01 at midnight.
	ModifiedJulianEpoch = 15020.0

	// Offset between a Julian day and a Modified Julian day.
	JulianOffset = 2400000.5

	secsPerDay = 86400.0
)

var _ tai.TimeSystem = ModifiedJulian{}

// ModifiedJulian is a date time expressed in days since 1858-11-17 at
// midnight. Implements [tai.TimeSystem].
type ModifiedJulian struct {
	Days float64
}

// Build the ModifiedJulian date of the given TAI [tai.Instant].
func FromInstant(i tai.Instant) ModifiedJulian {
	offset := (float64(i.Secs()) + float64(i.Nanos())*1e-9) / secsPerDay
	if i.Era() == tai.Past {
		return ModifiedJulian{Days: ModifiedJulianEpoch - offset}
	}
	return ModifiedJulian{Days: ModifiedJulianEpoch + offset}
}

// Express the ModifiedJulian date as a TAI [tai.Instant].
func (mj ModifiedJulian) AsInstant() tai.Instant {
	delta := (mj.Days - ModifiedJulianEpoch) * secsPerDay
	if delta < 0 {
		return tai.FromPreciseSeconds(-delta, tai.Past)
	}
	return tai.FromPreciseSeconds(delta, tai.Present)
}

// The ModifiedJulian date in Julian days, i.e. days since noon on
// 01 Jan 4713 BC.
func (mj ModifiedJulian) JulianDays() float64 {
	return mj.Days + JulianOffset
}

func (mj ModifiedJulian) String() string {
	return strconv.FormatFloat(mj.Days, 'f', -1, 64) + " MJD"
}
