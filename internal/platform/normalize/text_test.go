package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/worldcup-etl/internal/platform/table"
)

func TestScanAnomalies(t *testing.T) {
	values := []*string{
		table.Value("Brazil"),
		table.Value("croatia"),
		table.Value(" Mexico"),
		table.Value("Bosnia  Herzegovina"),
		table.Value(`Cote d'Ivoire`),
		table.Value("USA2"),
		table.Value("Côte"),
		nil,
		table.Value("croatia"),
	}

	got := ScanAnomalies(values)
	want := AnomalyReport{
		NotCapitalized: {"croatia"},
		ExtraSpaces:    {" Mexico", "Bosnia  Herzegovina"},
		SpecialChars:   {`Cote d'Ivoire`, "USA2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected report (-want +got):\n%s", diff)
	}
	if got.Total() != 5 {
		t.Fatalf("unexpected total: %d", got.Total())
	}
}

func TestScanAnomaliesEmptyInputKeepsAllCategories(t *testing.T) {
	got := ScanAnomalies(nil)
	for _, c := range []AnomalyCategory{NotCapitalized, ExtraSpaces, SpecialChars} {
		values, ok := got[c]
		if !ok || len(values) != 0 {
			t.Fatalf("category %s: ok=%t values=%v", c, ok, values)
		}
	}
}

func TestScalarHelpers(t *testing.T) {
	if got := Capitalize("  gERMANY  "); got != "Germany" {
		t.Fatalf("Capitalize: %q", got)
	}
	if got := Capitalize("élan"); got != "Élan" {
		t.Fatalf("Capitalize accented: %q", got)
	}
	if got := RemoveSpaces("17 : 00"); got != "17:00" {
		t.Fatalf("RemoveSpaces: %q", got)
	}
	if got := StripTrailingPeriod("Johannesburg."); got != "Johannesburg" {
		t.Fatalf("StripTrailingPeriod: %q", got)
	}
	if got := NFC("Sa\u0303o Paulo"); got != "S\u00e3o Paulo" {
		t.Fatalf("NFC: %q", got)
	}
}

func TestLeadingDigits(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "2", want: 2, wantOK: true},
		{in: " 3 ", want: 3, wantOK: true},
		{in: "1 (a.e.t.)", want: 1, wantOK: true},
		{in: "2.0", want: 2, wantOK: true},
		{in: "x", wantOK: false},
		{in: "", wantOK: false},
	}
	for _, tt := range tests {
		got, ok := LeadingDigits(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Fatalf("LeadingDigits(%q) = %d,%t want %d,%t", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMapValuePassThrough(t *testing.T) {
	mapping := map[string]string{"Group": "group"}
	if got := MapValue(table.Value("Group"), mapping); *got != "group" {
		t.Fatalf("mapped value: %q", *got)
	}
	if got := MapValue(table.Value("Friendly"), mapping); *got != "Friendly" {
		t.Fatalf("unmapped value must pass through, got %q", *got)
	}
	if got := MapValue(nil, mapping); got != nil {
		t.Fatalf("null must stay null")
	}
}

func TestColumnNormalizers(t *testing.T) {
	src := table.New([]string{"team", "code", "city"}, []table.Row{
		{"team": table.Value("  france "), "code": table.Value(" fr"), "city": table.Value(" PARIS ")},
		{"team": nil, "code": table.Value("br "), "city": table.Value("Rio")},
	})

	got := CapitalizeColumns(src, "team", "missing")
	got = UpperColumns(got, "code")
	got = LowerColumns(got, "city")

	if v := got.Column("team"); *v[0] != "France" || v[1] != nil {
		t.Fatalf("capitalize: %v", v)
	}
	if v := got.Column("code"); *v[0] != "FR" || *v[1] != "BR" {
		t.Fatalf("upper: %q %q", *v[0], *v[1])
	}
	if v := got.Column("city"); *v[0] != "paris" || *v[1] != "rio" {
		t.Fatalf("lower: %q %q", *v[0], *v[1])
	}
	if *src.Column("team")[0] != "  france " {
		t.Fatalf("source table mutated")
	}

	if same := CapitalizeColumns(src); same != src {
		t.Fatalf("empty column list must return the input table")
	}
}
