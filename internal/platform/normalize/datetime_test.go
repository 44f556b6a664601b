package normalize

import "testing"

func TestNormalizeDateTime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "day mon year dash time", in: "12 Jun 2014 - 17:00", want: "20140612170000", wantOK: true},
		{name: "slash year first", in: "2014/06/12 17:00", want: "20140612170000", wantOK: true},
		{name: "day first slash", in: "05/06/2014 13:00", want: "20140605130000", wantOK: true},
		{name: "iso with zone keeps wall clock", in: "2018-06-14T18:00:00+03:00", want: "20180614180000", wantOK: true},
		{name: "iso naive", in: "2018-06-14T18:00:00", want: "20180614180000", wantOK: true},
		{name: "date only", in: "02 Jan 2022", want: "20220102000000", wantOK: true},
		{name: "upper-case month and extra spaces", in: "  01   JAN 2022   09:05 ", want: "20220101090500", wantOK: true},
		{name: "year only", in: "2010", want: "20100101000000", wantOK: true},
		{name: "invalid", in: "invalid date", wantOK: false},
		{name: "unknown month", in: "99 Foo 2022 17:00", wantOK: false},
		{name: "impossible day", in: "31/02/2014", wantOK: false},
		{name: "empty", in: "   ", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDateTime(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeDateTime(%q) ok=%t, want %t", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("NormalizeDateTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestISOToCompact(t *testing.T) {
	tests := map[string]string{
		"2018-06-14T18:00:00+03:00": "20180614150000",
		"2018-07-15T18:00:00Z":      "20180715180000",
		"2018-07-15":                "20180715000000",
		"not a date":                SentinelDate,
		"":                          SentinelDate,
	}
	for in, want := range tests {
		if got := ISOToCompact(in); got != want {
			t.Fatalf("ISOToCompact(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSentinelSortsAfterRealDates(t *testing.T) {
	if len(SentinelDate) != len(CompactLayout) {
		t.Fatalf("sentinel width %d, want %d", len(SentinelDate), len(CompactLayout))
	}
	latest := ISOToCompact("9998-12-31T23:59:59Z")
	if !(latest < SentinelDate) {
		t.Fatalf("sentinel must sort after %q", latest)
	}
}

func TestCompactYear(t *testing.T) {
	if year, ok := CompactYear("20140612170000"); !ok || year != 2014 {
		t.Fatalf("unexpected year: %d ok=%t", year, ok)
	}
	if _, ok := CompactYear(SentinelDate); ok {
		t.Fatalf("sentinel must not yield a year")
	}
	if _, ok := CompactYear("2014"); ok {
		t.Fatalf("short value must not yield a year")
	}
}
