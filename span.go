package tai

import "strconv"

const nanosPerSec = 1_000_000_000

// Span is a nonnegative time span: a count of whole seconds plus a nanosecond
// fraction normalized into [0, 1e9).
//
// Span is similar to [time.Duration] but unsigned and wider, it can hold spans
// far beyond the ~292 years that fit in an int64 of nanoseconds. There is no
// such thing as a negative Span, subtracting a larger Span from a smaller one
// is an illegal operation and panics, see [Span.Sub].
type Span struct {
	secs  uint64
	nanos uint32
}

// Create new Span. Overflowing nanos are carried into secs.
func NewSpan(secs uint64, nanos uint32) Span {
	if nanos >= nanosPerSec {
		secs += uint64(nanos / nanosPerSec)
		nanos = nanos % nanosPerSec
	}
	return Span{secs: secs, nanos: nanos}
}

// Whole seconds of the span.
func (s Span) Secs() uint64 {
	return s.secs
}

// Nanosecond fraction of the span, always in [0, 1e9).
func (s Span) Nanos() uint32 {
	return s.nanos
}

func (s Span) IsZero() bool {
	return s.secs == 0 && s.nanos == 0
}

// Span as floating point seconds.
func (s Span) Seconds() float64 {
	return float64(s.secs) + float64(s.nanos)*1e-9
}

func (s Span) Add(d Span) Span {
	secs := s.secs + d.secs
	nanos := s.nanos + d.nanos
	if nanos >= nanosPerSec {
		secs++
		nanos -= nanosPerSec
	}
	return Span{secs: secs, nanos: nanos}
}

// Subtract d from s.
//
// Panics if d is greater than s, the caller must guarantee that d <= s, e.g.,
// by comparing the two spans first. See [Span.Cmp].
func (s Span) Sub(d Span) Span {
	secs := s.secs
	nanos := s.nanos
	if d.nanos > nanos {
		if secs == 0 {
			panic("tai: span subtraction underflow")
		}
		secs--
		nanos += nanosPerSec
	}
	nanos -= d.nanos
	if d.secs > secs {
		panic("tai: span subtraction underflow")
	}
	secs -= d.secs
	return Span{secs: secs, nanos: nanos}
}

// Compare two spans, returns -1, 0 or 1.
func (s Span) Cmp(d Span) int {
	if s.secs != d.secs {
		if s.secs < d.secs {
			return -1
		}
		return 1
	}
	if s.nanos != d.nanos {
		if s.nanos < d.nanos {
			return -1
		}
		return 1
	}
	return 0
}

// Format as seconds with nanosecond precision, e.g., "159.000000010s".
func (s Span) String() string {
	return formatSecNano(s.secs, s.nanos) + "s"
}

func formatSecNano(secs uint64, nanos uint32) string {
	b := make([]byte, 0, 32)
	b = strconv.AppendUint(b, secs, 10)
	b = append(b, '.')
	frac := strconv.FormatUint(uint64(nanos), 10)
	for i := len(frac); i < 9; i++ {
		b = append(b, '0')
	}
	b = append(b, frac...)
	return string(b)
}
