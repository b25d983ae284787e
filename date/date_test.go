package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-01", want: New(2025, time.July, 1)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2024/1/31", want: New(2024, time.January, 31)},
		{in: "01/02", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	d := New(2025, time.March, 17)
	if got, want := d.AddMonths(-3), New(2024, time.December, 1); got != want {
		t.Errorf("AddMonths(-3) = %v, want %v", got, want)
	}
	if got, want := d.AddMonths(10), New(2026, time.January, 1); got != want {
		t.Errorf("AddMonths(10) = %v, want %v", got, want)
	}
}

func TestDateJSON(t *testing.T) {
	var got struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2025-09-08"}`), &got); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if want := New(2025, time.September, 8); got.Date != want {
		t.Errorf("Unmarshal() = %v, want %v", got.Date, want)
	}
	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `{"date":"2025-09-08"}` {
		t.Errorf("Marshal() = %s", data)
	}
}
