package relative

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	// 2024-01-02 is a Tuesday.
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "yesterday",
			date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "yesterday at 12:00 AM",
		},
		{
			name: "today",
			date: time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC),
			want: "today at 3:00 PM",
		},
		{
			name: "tomorrow",
			date: time.Date(2024, 1, 3, 9, 30, 0, 0, time.UTC),
			want: "tomorrow at 9:30 AM",
		},
		{
			name: "later this week",
			date: time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC),
			want: "Friday at 12:00 PM",
		},
		{
			name: "last week",
			date: time.Date(2023, 12, 29, 8, 5, 0, 0, time.UTC),
			want: "last Friday at 8:05 AM",
		},
		{
			name: "six days ago",
			date: time.Date(2023, 12, 27, 23, 59, 0, 0, time.UTC),
			want: "last Wednesday at 11:59 PM",
		},
		{
			name: "seven days ago",
			date: time.Date(2023, 12, 26, 10, 0, 0, 0, time.UTC),
			want: "12/26/2023",
		},
		{
			name: "seven days ahead",
			date: time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC),
			want: "01/09/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.date, base, nil); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatUsesLocationForCalendarDays(t *testing.T) {
	date := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	base := time.Date(2024, 1, 2, 0, 10, 0, 0, time.UTC)

	if got, want := Format(date, base, time.UTC), "yesterday at 11:30 PM"; got != want {
		t.Errorf("Format() in UTC = %q, want %q", got, want)
	}

	est := time.FixedZone("EST", -5*60*60)
	if got, want := Format(date, base, est), "today at 6:30 PM"; got != want {
		t.Errorf("Format() in EST = %q, want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "rfc3339", input: "2024-01-01T00:00:00Z", wantOK: true},
		{name: "fractional seconds", input: "2024-01-01T00:00:00.123456Z", wantOK: true},
		{name: "offset", input: "2024-01-01T02:00:00+02:00", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "last tuesday", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	got, ok := FormatString("2024-01-01T00:00:00Z", base, nil)
	if !ok || got != "yesterday at 12:00 AM" {
		t.Errorf("FormatString() = (%q, %v), want (\"yesterday at 12:00 AM\", true)", got, ok)
	}

	if _, ok := FormatString("not-a-date", base, nil); ok {
		t.Error("FormatString() accepted an unparseable timestamp")
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{name: "same instant", then: now, want: "now"},
		{name: "hours", then: now.Add(-3 * time.Hour), want: "3 hours ago"},
		{name: "future", then: now.Add(48 * time.Hour), want: "2 days from now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ago(tt.then, now); got != tt.want {
				t.Errorf("Ago() = %q, want %q", got, tt.want)
			}
		})
	}
}
