package json

import (
	"testing"

	"github.com/curtisnewbie/tai"
)

type record struct {
	Name string      `json:"name"`
	At   tai.Instant `json:"at"`
}

func TestWriteParseJson(t *testing.T) {
	r := record{Name: "tick", At: tai.NewInstant(159, 10, tai.Past)}
	buf, err := WriteJson(r)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseJsonAs[record](buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Name != r.Name || !parsed.At.Equal(r.At) {
		t.Fatalf("expected %+v, actual: %+v", r, parsed)
	}
}

func TestSWriteJson(t *testing.T) {
	s, err := SWriteJson(map[string]string{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if s != `{"k":"v"}` {
		t.Fatalf("unexpected: %v", s)
	}

	// strings pass through
	s, err = SWriteJson("already json")
	if err != nil {
		t.Fatal(err)
	}
	if s != "already json" {
		t.Fatalf("unexpected: %v", s)
	}
}

func TestSParseJson(t *testing.T) {
	var r record
	if err := SParseJson(`{"name":"tock","at":"3600"}`, &r); err != nil {
		t.Fatal(err)
	}
	if r.Name != "tock" || !r.At.Equal(tai.NewInstant(3600, 0, tai.Present)) {
		t.Fatalf("unexpected: %+v", r)
	}

	if err := SParseJson(`{"name":`, &r); err == nil {
		t.Fatal("expected error")
	}
}
