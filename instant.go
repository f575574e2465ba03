package tai

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Instant represents an instant in time with respect to the TAI Epoch,
// 01 Jan 1900 at midnight, as per the International Atomic Time (TAI) and NTP
// specifications. All time systems in this module are represented with
// respect to this epoch.
//
// An Instant is the pair of a nonnegative [Span] (the magnitude of the offset
// from the epoch) and an [Era] (which side of the epoch the offset points to).
// An Instant with zero magnitude is the epoch itself regardless of the era it
// was constructed with, see [Instant.Equal].
//
// Instant is an immutable value type, all arithmetic returns a new Instant.
// It is safe to share Instants across goroutines.
//
// Instant implements json Marshaler and Unmarshaler. It is marshalled as
// signed decimal seconds with nanosecond precision, e.g., "-159.000000010"
// for 159s 10ns before the epoch. It can be unmarshalled from the same string
// form or from a plain json number.
type Instant struct {
	era  Era
	span Span
}

// Create new Instant from whole seconds, a nanosecond fraction and the era
// relative to the TAI Epoch: 01 January 1900, 00:00:00.0.
//
// Overflowing nanos are normalized the same way [NewSpan] does.
func NewInstant(secs uint64, nanos uint32, era Era) Instant {
	return Instant{era: era, span: NewSpan(secs, nanos)}
}

// Create new Instant from the magnitude of the offset in seconds, provided as
// a floating point value, and the era relative to the TAI Epoch.
//
// The value is split into whole seconds rounded to nearest, and a nanosecond
// remainder rounded to nearest integer nanosecond. Reading an Instant back as
// Secs() + Nanos()*1e-9 and feeding the value through this constructor with
// the same era reproduces the original Instant, modulo floating point
// rounding at the nanosecond boundary.
func FromPreciseSeconds(sec float64, era Era) Instant {
	whole := math.Round(sec)
	nanos := math.Round((sec - whole) * 1e9)
	if nanos < 0 {
		whole--
		nanos += 1e9
	}
	return Instant{era: era, span: NewSpan(uint64(whole), uint32(nanos))}
}

// Whole seconds between the instant and the epoch.
func (i Instant) Secs() uint64 {
	return i.span.secs
}

// Nanosecond fraction of the instant, always in [0, 1e9).
func (i Instant) Nanos() uint32 {
	return i.span.nanos
}

// Era of the instant, i.e. whether it's before or after the TAI Epoch.
func (i Instant) Era() Era {
	return i.era
}

// Magnitude of the offset between the instant and the epoch (past OR
// present), check [Instant.Era].
func (i Instant) Span() Span {
	return i.span
}

// True if the instant is exactly the TAI Epoch, whichever era it was
// constructed with.
func (i Instant) IsEpoch() bool {
	return i.span.IsZero()
}

// Check whether two instants are the same instant.
//
// Two instants are equal if their magnitudes match and either both are
// exactly zero (the era is ignored, a zero offset is the epoch itself no
// matter which side it was measured from), or their eras also match.
func (i Instant) Equal(u Instant) bool {
	if i.span != u.span {
		return false
	}
	if i.span.IsZero() {
		return true
	}
	return i.era == u.era
}

// Compare two instants chronologically, returns -1, 0 or 1.
//
// Any Past instant is less than any Present instant. Within the Present era a
// larger magnitude is later; within the Past era a larger magnitude is
// further before the epoch, i.e. *earlier*, so within-Past comparison runs
// magnitude-descending.
func (i Instant) Compare(u Instant) int {
	if i.Equal(u) {
		return 0
	}
	// a zero offset is the epoch, order it as a Present instant whichever
	// era it carries
	ie, ue := i.era, u.era
	if i.span.IsZero() {
		ie = Present
	}
	if u.span.IsZero() {
		ue = Present
	}
	if ie != ue {
		if ie == Past {
			return -1
		}
		return 1
	}
	c := i.span.Cmp(u.span)
	if ie == Past {
		return -c
	}
	return c
}

// True if instant i is chronologically after u.
func (i Instant) After(u Instant) bool {
	return i.Compare(u) > 0
}

// True if instant i is chronologically before u.
func (i Instant) Before(u Instant) bool {
	return i.Compare(u) < 0
}

// Add a [Span] to the instant.
//
// Adding to a Past instant moves toward the epoch and potentially past it; if
// the span reaches or crosses the epoch the era flips to Present and the
// magnitude becomes the remaining offset. Landing exactly on the epoch yields
// a zero Present instant.
func (i Instant) Add(d Span) Instant {
	if d.IsZero() {
		return i
	}
	if i.era == Present {
		return Instant{era: Present, span: i.span.Add(d)}
	}
	if d.Cmp(i.span) >= 0 {
		// reaches or crosses the epoch
		return Instant{era: Present, span: d.Sub(i.span)}
	}
	return Instant{era: Past, span: i.span.Sub(d)}
}

// Subtract a [Span] from the instant. Mirror image of [Instant.Add].
//
// Subtracting from a Present instant moves toward the epoch and potentially
// past it; if the span reaches or crosses the epoch the era flips to Past.
func (i Instant) Sub(d Span) Instant {
	if d.IsZero() {
		return i
	}
	if i.era == Past {
		return Instant{era: Past, span: i.span.Add(d)}
	}
	if d.Cmp(i.span) >= 0 {
		// reaches or crosses the epoch
		return Instant{era: Past, span: d.Sub(i.span)}
	}
	return Instant{era: Present, span: i.span.Sub(d)}
}

// Seconds between instant i and instant u (i.e., i - u), as a positive or
// negative floating point number.
func (i Instant) Since(u Instant) float64 {
	if i.Equal(u) {
		// covers the cross-era zero offset case exactly
		return 0
	}
	if i.era == u.era {
		// Span.Sub panics if the result would be negative, subtract in the
		// direction of the larger magnitude and negate as needed
		var delta float64
		if i.span.Cmp(u.span) > 0 {
			delta = i.span.Sub(u.span).Seconds()
		} else {
			delta = -u.span.Sub(i.span).Seconds()
		}
		if i.era == Past {
			return -delta
		}
		return delta
	}
	// different eras, the offsets point in opposite directions, the distance
	// is the sum of the two magnitudes
	delta := i.span.Add(u.span).Seconds()
	if u.era == Present {
		// i is in the past, past minus present is negative
		return -delta
	}
	return delta
}

// Format as signed decimal seconds with nanosecond precision, e.g.,
// "-159.000000010" for 159s 10ns before the epoch.
func (i Instant) String() string {
	if i.era == Past && !i.span.IsZero() {
		return "-" + formatSecNano(i.span.secs, i.span.nanos)
	}
	return formatSecNano(i.span.secs, i.span.nanos)
}

// Parse an Instant from its signed decimal seconds form, e.g., "159.5",
// "-159.000000010". Fractional digits beyond nanosecond precision are
// dropped.
func ParseInstant(s string) (Instant, error) {
	v := strings.TrimSpace(s)
	era := Present
	if strings.HasPrefix(v, "-") {
		era = Past
		v = v[1:]
	} else if strings.HasPrefix(v, "+") {
		v = v[1:]
	}
	if v == "" {
		return Instant{}, fmt.Errorf("illegal instant '%s'", s)
	}

	sp := v
	frac := ""
	if idx := strings.IndexByte(v, '.'); idx > -1 {
		sp = v[:idx]
		frac = v[idx+1:]
	}
	if sp == "" {
		sp = "0"
	}
	secs, err := strconv.ParseUint(sp, 10, 64)
	if err != nil {
		return Instant{}, fmt.Errorf("illegal instant '%s', %w", s, err)
	}

	var nanos uint32
	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		n, err := strconv.ParseUint(frac, 10, 32)
		if err != nil {
			return Instant{}, fmt.Errorf("illegal instant '%s', %w", s, err)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nanos = uint32(n)
	}
	return NewInstant(secs, nanos, era), nil
}

// Implements encoding/json Marshaler.
func (i Instant) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(i.String())), nil
}

// Implements encoding/json Unmarshaler.
func (i *Instant) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if len(s) > 1 && s[0] == '"' {
		uq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("failed to UnmarshalJSON Instant '%s', %w", s, err)
		}
		s = uq
	}
	parsed, err := ParseInstant(s)
	if err == nil {
		*i = parsed
		return nil
	}
	// not a plain decimal, may still be a number, e.g., in scientific
	// notation
	f, cerr := cast.ToFloat64E(s)
	if cerr != nil {
		return fmt.Errorf("failed to UnmarshalJSON Instant, tried decimal seconds format %w, tried float format %w", err, cerr)
	}
	if f < 0 {
		*i = FromPreciseSeconds(-f, Past)
	} else {
		*i = FromPreciseSeconds(f, Present)
	}
	return nil
}
