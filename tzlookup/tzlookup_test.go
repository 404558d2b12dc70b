package tzlookup

import "testing"

func TestTimezoneAtKnownCities(t *testing.T) {
	finder, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		name      string
		longitude float64
		latitude  float64
		want      string
	}{
		{"London", -0.1278, 51.5074, "Europe/London"},
		{"Tokyo", 139.6917, 35.6895, "Asia/Tokyo"},
		{"New York", -74.0060, 40.7128, "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := finder.TimezoneAt(tt.longitude, tt.latitude); got != tt.want {
				t.Errorf("TimezoneAt(%v, %v) = %q, want %q", tt.longitude, tt.latitude, got, tt.want)
			}
		})
	}
}

func TestTimezoneAtOpenOcean(t *testing.T) {
	finder, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// The default finder resolves ocean points to Etc/GMT zones rather than
	// returning nothing, so just assert it does not panic and is stable.
	first := finder.TimezoneAt(-140.0, -40.0)
	second := finder.TimezoneAt(-140.0, -40.0)
	if first != second {
		t.Errorf("TimezoneAt not stable: %q vs %q", first, second)
	}
}

func TestNewReturnsSharedFinder(t *testing.T) {
	first, err := New()
	if err != nil {
		t.Fatalf("first New returned error: %v", err)
	}
	second, err := New()
	if err != nil {
		t.Fatalf("second New returned error: %v", err)
	}
	if first.(*tzfFinder).f != second.(*tzfFinder).f {
		t.Error("New built a second finder instead of sharing the first")
	}
}
