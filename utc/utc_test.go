package utc

import (
	"math"
	"testing"

	"github.com/curtisnewbie/tai"
	"github.com/curtisnewbie/tai/errs"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(2017, 12, 25, 1, 2, 14, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := New(2016, 2, 29, 0, 0, 0, 0); err != nil {
		t.Fatalf("2016 is a leap year, %v", err)
	}

	bad := [][7]int{
		{2017, 0, 1, 0, 0, 0, 0},
		{2017, 13, 1, 0, 0, 0, 0},
		{2017, 2, 29, 0, 0, 0, 0},
		{2017, 4, 31, 0, 0, 0, 0},
		{2017, 1, 1, 24, 0, 0, 0},
		{2017, 1, 1, 0, 60, 0, 0},
		{2017, 1, 1, 0, 0, 61, 0},
	}
	for _, b := range bad {
		_, err := New(b[0], b[1], b[2], b[3], b[4], b[5], uint32(b[6]))
		if err == nil {
			t.Fatalf("expected carry error for %v", b)
		}
		if !errs.IsCarryErr(err) {
			t.Fatalf("expected carry error for %v, actual: %v", b, err)
		}
	}

	if _, err := New(2017, 1, 1, 0, 0, 0, 1_000_000_000); !errs.IsCarryErr(err) {
		t.Fatalf("expected carry error for overflowing nanos, actual: %v", err)
	}
}

func TestLeapSecond(t *testing.T) {
	// the 61st second only exists in the last minute of a leap second date
	leap, err := New(2015, 6, 30, 23, 59, 60, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(2015, 2, 28, 23, 59, 60, 0); !errs.IsCarryErr(err) {
		t.Fatalf("expected carry error, actual: %v", err)
	}
	if _, err := New(2015, 6, 30, 12, 0, 60, 0); !errs.IsCarryErr(err) {
		t.Fatalf("expected carry error, actual: %v", err)
	}

	// the leap second maps to midnight of the following date
	midnight, err := New(2015, 7, 1, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !leap.AsInstant().Equal(midnight.AsInstant()) {
		t.Fatalf("expected %v == %v", leap.AsInstant(), midnight.AsInstant())
	}
}

func TestAsInstant(t *testing.T) {
	epoch, err := New(1900, 1, 1, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !epoch.AsInstant().IsEpoch() {
		t.Fatalf("expected the epoch, actual: %v", epoch.AsInstant())
	}

	santa, err := New(2017, 12, 25, 1, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	i := santa.AsInstant()
	if i.Secs() != 3_723_152_534 || i.Nanos() != 0 || i.Era() != tai.Present {
		t.Fatalf("unexpected: %v %v %v", i.Secs(), i.Nanos(), i.Era())
	}

	// one second before the epoch
	before, err := New(1899, 12, 31, 23, 59, 59, 0)
	if err != nil {
		t.Fatal(err)
	}
	i = before.AsInstant()
	if i.Secs() != 1 || i.Nanos() != 0 || i.Era() != tai.Past {
		t.Fatalf("unexpected: %v %v %v", i.Secs(), i.Nanos(), i.Era())
	}

	// the sub-second fraction points forward on the timeline
	halfBefore, err := New(1899, 12, 31, 23, 59, 59, 500_000_000)
	if err != nil {
		t.Fatal(err)
	}
	i = halfBefore.AsInstant()
	if i.Secs() != 0 || i.Nanos() != 500_000_000 || i.Era() != tai.Past {
		t.Fatalf("unexpected: %v %v %v", i.Secs(), i.Nanos(), i.Era())
	}
}

func TestAsInstantArithmetic(t *testing.T) {
	santa, err := New(2017, 12, 25, 1, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	plusOneHour, err := New(2017, 12, 25, 2, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := santa.AsInstant().Add(tai.NewSpan(3600, 0)); !got.Equal(plusOneHour.AsInstant()) {
		t.Fatalf("could not add one hour to christmas, actual: %v", got)
	}
}

func TestFromInstantRoundTrip(t *testing.T) {
	dates := [][7]int{
		{1900, 1, 1, 0, 0, 0, 0},
		{2017, 12, 25, 1, 2, 14, 0},
		{2000, 2, 29, 14, 57, 29, 0},
		{1899, 12, 31, 23, 59, 59, 500_000_000},
		{1865, 4, 9, 15, 0, 0, 0},
		{2015, 7, 1, 0, 0, 0, 0},
	}
	for _, d := range dates {
		u, err := New(d[0], d[1], d[2], d[3], d[4], d[5], uint32(d[6]))
		if err != nil {
			t.Fatal(err)
		}
		got := FromInstant(u.AsInstant())
		if got != u {
			t.Fatalf("expected %v, actual: %v", u, got)
		}
	}
}

func TestString(t *testing.T) {
	santa, err := New(2017, 12, 25, 1, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s := santa.String(); s != "2017-12-25T01:02:14+00:00" {
		t.Fatalf("unexpected: %v", s)
	}

	frac, err := New(2017, 1, 1, 0, 0, 0, 120_000_000)
	if err != nil {
		t.Fatal(err)
	}
	if s := frac.String(); s != "2017-01-01T00:00:00.12+00:00" {
		t.Fatalf("unexpected: %v", s)
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{
		"2017-12-25T01:02:14",
		"2017-12-25T01:02:14Z",
		"2017-12-25T01:02:14+00:00",
		"2017-12-25 01:02:14",
	} {
		u, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := New(2017, 12, 25, 1, 2, 14, 0)
		if u != want {
			t.Fatalf("expected %v, actual: %v", want, u)
		}
	}

	u, err := Parse("2017-12-25T01:02:14.000000159Z")
	if err != nil {
		t.Fatal(err)
	}
	if u.Nanos() != 159 {
		t.Fatalf("unexpected nanos: %v", u.Nanos())
	}

	// a 61st second is parseable on a leap second date
	if _, err := Parse("2015-06-30T23:59:60Z"); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse("2015-07-01T23:59:60Z"); err == nil {
		t.Fatal("expected error")
	}

	for _, s := range []string{"", "2017-12-25", "25/12/2017T01:02:14", "2017-12-25T01:02"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for '%v'", s)
		}
	}
}

func TestCivilDays(t *testing.T) {
	// unix epoch
	if d := daysFromCivil(1970, 1, 1); d != 0 {
		t.Fatalf("expected 0, actual: %v", d)
	}
	if d := daysFromCivil(1900, 1, 1); d != epochDays {
		t.Fatalf("expected %v, actual: %v", epochDays, d)
	}

	// inverse over a wide range, crossing leap years and centuries
	for z := int64(-80000); z <= 80000; z += 13 {
		y, m, d := civilFromDays(z)
		if back := daysFromCivil(y, m, d); back != z {
			t.Fatalf("civilFromDays(%v) = (%v, %v, %v), daysFromCivil back: %v", z, y, m, d, back)
		}
	}
}

func TestSecondsSinceBetweenDates(t *testing.T) {
	a, err := New(2017, 12, 25, 1, 2, 14, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(2017, 12, 25, 1, 2, 15, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := b.AsInstant().Since(a.AsInstant()); math.Abs(d-1.0) > 1e-9 {
		t.Fatalf("expected 1.0, actual: %v", d)
	}
}
