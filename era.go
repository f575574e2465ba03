package tai

// Era tells which side of the TAI Epoch (01 Jan 1900, midnight) an [Instant]
// sits on. An Instant before the epoch is in the Past era, otherwise it's in
// the Present era. Past < Present.
type Era int

const (
	Past Era = iota
	Present
)

func (e Era) String() string {
	if e == Past {
		return "Past"
	}
	return "Present"
}
