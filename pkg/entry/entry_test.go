package entry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestListRoundTrip(t *testing.T) {
	want := []Entry{{
		ID:          "b8a4c1f2-93f4-4d4e-9c51-1f7c0a2d9e11",
		Date:        "2026-10-19",
		MoodIndex:   4,
		EnergyLevel: 8,
		SmallWin:    "Walked to work",
		Notes:       "",
		CreatedAt:   1792400000000,
	}, {
		ID:          "17923200000005x2k9qpl0",
		Date:        "2026-10-18",
		MoodIndex:   0,
		EnergyLevel: 1,
		SmallWin:    "Called mum",
		Notes:       "long day\nslept early",
		CreatedAt:   1792300000000,
	}}

	data, err := MarshalList(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalList(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestListWireFormat(t *testing.T) {
	data, err := MarshalList([]Entry{{ID: "a", Date: "2026-10-19", MoodIndex: 3, EnergyLevel: 6, SmallWin: "w", CreatedAt: 42}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"id", "date", "moodIndex", "energyLevel", "smallWin", "notes", "createdAt"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("field %q missing from %s", field, data)
		}
	}
}

func TestUnmarshalListEmpty(t *testing.T) {
	for _, in := range []string{"", "null", "[]"} {
		got, err := UnmarshalList([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("%q: expected empty non-nil list, got %#v", in, got)
		}
	}
	if data, _ := MarshalList(nil); string(data) != "[]" {
		t.Fatalf("nil list should encode as [], got %s", data)
	}
}

func TestUnmarshalListCorrupt(t *testing.T) {
	for _, in := range []string{"{", `{"id":"x"}`, `[{"moodIndex":"high"}]`} {
		if _, err := UnmarshalList([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestNewStampsEntry(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 15, 0, 0, time.Local)
	e := New(now, 3, 7, "Finished the report", "")

	if _, err := uuid.Parse(e.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", e.ID, err)
	}
	if e.Date != "2026-10-19" {
		t.Errorf("date = %s", e.Date)
	}
	if e.CreatedAt != now.UnixMilli() {
		t.Errorf("createdAt = %d", e.CreatedAt)
	}
	if !e.Created().Equal(now) {
		t.Errorf("Created() = %v", e.Created())
	}
	if other := New(now, 3, 7, "again", ""); other.ID == e.ID {
		t.Errorf("ids should differ")
	}
}

func TestParseMood(t *testing.T) {
	tests := map[string]Mood{
		"0":        VeryBad,
		"4":        Great,
		"great":    Great,
		"Very-Bad": VeryBad,
		"neutral":  Neutral,
	}
	for in, want := range tests {
		got, err := ParseMood(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseMood(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"5", "-1", "meh"} {
		if _, err := ParseMood(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
	if s := Mood(7).String(); s != "mood(7)" {
		t.Errorf("out of range label = %s", s)
	}
}
