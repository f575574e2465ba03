// Package utc provides a civil UTC date time representation built on top of [tai.Instant].
//
// [Utc] implements [tai.TimeSystem]. Conversions between Utc and other time systems go
// through the TAI Instant, e.g.,
//
//	u, _ := utc.New(2017, 12, 25, 1, 2, 14, 0)
//	mj := julian.FromInstant(u.AsInstant())
//
// Leap seconds are supported for validation: a 61st second (sec == 60) is accepted only
// in the last minute of a date announced by the IETF as carrying a leap second. To ease
// computation, that second is treated as the 60th second of the date, i.e. it maps to the
// same Instant as 00:00:00 of the following date.
package utc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/curtisnewbie/tai"
	"github.com/curtisnewbie/tai/errs"
)

const (
	secsPerDay  = 86400
	nanosPerSec = 1_000_000_000
	epochDays   = -25567 // 1900-01-01 in days since 1970-01-01
)

// Dates announced by the IETF whose final minute contains a 61st second.
var leapSecondDates = [][3]int{
	{1972, 6, 30}, {1972, 12, 31}, {1973, 12, 31}, {1974, 12, 31},
	{1975, 12, 31}, {1976, 12, 31}, {1977, 12, 31}, {1978, 12, 31},
	{1979, 12, 31}, {1981, 6, 30}, {1982, 6, 30}, {1983, 6, 30},
	{1985, 6, 30}, {1987, 12, 31}, {1989, 12, 31}, {1990, 12, 31},
	{1992, 6, 30}, {1993, 6, 30}, {1994, 6, 30}, {1995, 12, 31},
	{1997, 6, 30}, {1998, 12, 31}, {2005, 12, 31}, {2008, 12, 31},
	{2012, 6, 30}, {2015, 6, 30}, {2016, 12, 31},
}

var usualDaysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

var _ tai.TimeSystem = Utc{}

// Utc is a civil UTC date time. Use [New] to instantiate, an Utc is always a
// valid date time.
//
// Dates before 1900-01-01 convert to Past era instants.
type Utc struct {
	year  int
	month int
	day   int
	hour  int
	min   int
	sec   int
	nanos uint32
}

// Create new Utc date time.
//
// Returns [errs.ErrCarry] if any field is out of range for the given date,
// e.g., a 61st second on a date without a leap second. Check with
// [errs.IsCarryErr].
func New(year, month, day, hour, min, sec int, nanos uint32) (Utc, error) {
	if month < 1 || month > 12 {
		return Utc{}, errs.ErrCarry.WithMsg("month %d is out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Utc{}, errs.ErrCarry.WithMsg("day %d is out of range for %04d-%02d", day, year, month)
	}
	if hour < 0 || hour > 23 {
		return Utc{}, errs.ErrCarry.WithMsg("hour %d is out of range", hour)
	}
	if min < 0 || min > 59 {
		return Utc{}, errs.ErrCarry.WithMsg("minute %d is out of range", min)
	}
	maxSec := 59
	if hour == 23 && min == 59 && isLeapSecondDate(year, month, day) {
		maxSec = 60
	}
	if sec < 0 || sec > maxSec {
		return Utc{}, errs.ErrCarry.WithMsg("second %d is out of range for %04d-%02d-%02dT%02d:%02d", sec, year, month, day, hour, min)
	}
	if nanos >= nanosPerSec {
		return Utc{}, errs.ErrCarry.WithMsg("nanos %d is out of range", nanos)
	}
	return Utc{year: year, month: month, day: day, hour: hour, min: min, sec: sec, nanos: nanos}, nil
}

func (u Utc) Year() int     { return u.year }
func (u Utc) Month() int    { return u.month }
func (u Utc) Day() int      { return u.day }
func (u Utc) Hour() int     { return u.hour }
func (u Utc) Min() int      { return u.min }
func (u Utc) Sec() int      { return u.sec }
func (u Utc) Nanos() uint32 { return u.nanos }

// Express the date time as a TAI [tai.Instant].
//
// The offset is counted in civil seconds since 1900-01-01T00:00:00, a leap
// second (sec == 60) maps to midnight of the following date.
func (u Utc) AsInstant() tai.Instant {
	days := daysFromCivil(u.year, u.month, u.day) - epochDays
	total := days*secsPerDay + int64(u.hour)*3600 + int64(u.min)*60 + int64(u.sec)
	if total >= 0 {
		return tai.NewInstant(uint64(total), u.nanos, tai.Present)
	}
	if u.nanos == 0 {
		return tai.NewInstant(uint64(-total), 0, tai.Past)
	}
	// the fraction points forward on the timeline, borrow one second from
	// the Past magnitude
	return tai.NewInstant(uint64(-total-1), nanosPerSec-u.nanos, tai.Past)
}

// Build the civil UTC date time of the given TAI [tai.Instant].
//
// A leap second can not be reproduced: the 61st second of a leap second date
// comes back as 00:00:00 of the following date.
func FromInstant(i tai.Instant) Utc {
	secs := int64(i.Secs())
	nanos := i.Nanos()
	if i.Era() == tai.Past {
		secs = -secs
		if nanos > 0 {
			secs--
			nanos = nanosPerSec - nanos
		}
	}
	days := floorDiv(secs, secsPerDay)
	rem := secs - days*secsPerDay
	year, month, day := civilFromDays(days + epochDays)
	return Utc{
		year:  year,
		month: month,
		day:   day,
		hour:  int(rem / 3600),
		min:   int(rem % 3600 / 60),
		sec:   int(rem % 60),
		nanos: nanos,
	}
}

// Format as ISO 8601, e.g., "2017-12-25T01:02:14+00:00". The nanosecond
// fraction is printed only when non-zero, with trailing zeros trimmed.
func (u Utc) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", u.year, u.month, u.day, u.hour, u.min, u.sec))
	if u.nanos > 0 {
		frac := fmt.Sprintf("%09d", u.nanos)
		frac = strings.TrimRight(frac, "0")
		b.WriteString("." + frac)
	}
	b.WriteString("+00:00")
	return b.String()
}

// Parse an ISO 8601 date time, e.g., "2017-12-25T01:02:14", with an optional
// fraction and an optional "Z" / "+00:00" suffix. A space separator between
// date and time is accepted as well.
//
// Unlike [time.Parse], a 61st second (sec == 60) is accepted on leap second
// dates.
func Parse(s string) (Utc, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "Z")
	v = strings.TrimSuffix(v, "+00:00")

	sep := strings.IndexAny(v, "T ")
	if sep < 0 {
		return Utc{}, errs.ErrIllegalArgument.WithMsg("illegal date time '%s'", s)
	}
	dateTok := strings.Split(v[:sep], "-")
	timeTok := strings.Split(v[sep+1:], ":")
	if len(dateTok) != 3 || len(timeTok) != 3 {
		return Utc{}, errs.ErrIllegalArgument.WithMsg("illegal date time '%s'", s)
	}

	secTok := timeTok[2]
	frac := ""
	if idx := strings.IndexByte(secTok, '.'); idx > -1 {
		frac = secTok[idx+1:]
		secTok = secTok[:idx]
	}

	fields := []string{dateTok[0], dateTok[1], dateTok[2], timeTok[0], timeTok[1], secTok}
	parsed := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Utc{}, errs.ErrIllegalArgument.WithMsg("illegal date time '%s', %v", s, err)
		}
		parsed[i] = n
	}

	var nanos uint32
	if frac != "" {
		if len(frac) > 9 {
			frac = frac[:9]
		}
		n, err := strconv.ParseUint(frac, 10, 32)
		if err != nil {
			return Utc{}, errs.ErrIllegalArgument.WithMsg("illegal date time '%s', %v", s, err)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nanos = uint32(n)
	}
	return New(parsed[0], parsed[1], parsed[2], parsed[3], parsed[4], parsed[5], nanos)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return usualDaysPerMonth[month-1]
}

func isLeapSecondDate(year, month, day int) bool {
	for _, d := range leapSecondDates {
		if d[0] == year && d[1] == month && d[2] == day {
			return true
		}
	}
	return false
}

// Days since 1970-01-01 of the given civil date, proleptic Gregorian.
func daysFromCivil(y, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := floorDiv(int64(y), 400)
	yoe := int64(y) - era*400
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// Civil date of the given days since 1970-01-01, inverse of daysFromCivil.
func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}
	return int(y), month, day
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
