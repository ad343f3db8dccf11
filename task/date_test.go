package task

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-02-28")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != (Date{Year: 2025, Month: time.February, Day: 28}) {
		t.Fatalf("unexpected date %+v", got)
	}
	if got.String() != "2025-02-28" {
		t.Fatalf("expected round trip, got %q", got.String())
	}

	for _, bad := range []string{"", "tomorrow", "2025-02-30", "28/02/2025"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("parse %q: expected ErrInvalidInput, got %v", bad, err)
		}
	}
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	morning := DateOf(time.Date(2025, 1, 5, 0, 1, 0, 0, time.UTC))
	evening := DateOf(time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC))
	if morning != evening {
		t.Fatalf("expected same date, got %s and %s", morning, evening)
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{Year: 2024, Month: time.December, Day: 31}
	b := Date{Year: 2025, Month: time.January, Day: 2}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Fatalf("unexpected ordering between %s and %s", a, b)
	}
	if days := a.DaysUntil(b); days != 2 {
		t.Fatalf("expected 2 days, got %d", days)
	}
	if days := b.DaysUntil(a); days != -2 {
		t.Fatalf("expected -2 days, got %d", days)
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Due   Date `json:"due"`
		Empty Date `json:"empty"`
	}{Due: Date{Year: 2025, Month: time.June, Day: 1}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"due":"2025-06-01","empty":""}` {
		t.Fatalf("unexpected json %s", data)
	}

	var decoded struct {
		Due Date `json:"due"`
	}
	if err := json.Unmarshal([]byte(`{"due":"2026-01-15"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Due.String() != "2026-01-15" {
		t.Fatalf("unexpected decoded date %s", decoded.Due)
	}
	if err := json.Unmarshal([]byte(`{"due":"soon"}`), &decoded); err == nil {
		t.Fatalf("expected invalid date to fail")
	}
}
