package ruleset

// Source edition identifiers.
const (
	SourceWC2010 = "wc2010"
	SourceWC2014 = "wc2014"
	SourceWC2018 = "wc2018"
	SourceWC2022 = "wc2022"
)

// Sources lists the editions in processing order.
var Sources = []string{SourceWC2010, SourceWC2014, SourceWC2018, SourceWC2022}

// Bundle is the declarative rule set one transformer runs with.
type Bundle struct {
	// Keep lists raw columns to project before renaming.
	Keep []string `yaml:"keep" validate:"required,min=1,dive,required"`
	// Rename maps raw column names onto canonical field names.
	Rename map[string]string `yaml:"rename"`
	// StageMapping harmonises stage vocabulary. Misses pass through.
	StageMapping map[string]string `yaml:"stage_mapping"`
	// TeamMapping corrects known spelling anomalies. Misses pass through.
	TeamMapping map[string]string `yaml:"team_mapping"`
	// Edition is the tournament year used when the source row carries none.
	Edition int `yaml:"edition" validate:"required,gte=1930,lte=2100"`
	// ScanTeams logs anomaly diagnostics for team columns before correction.
	ScanTeams bool `yaml:"scan_teams"`
}

// Set holds one bundle per source edition.
type Set struct {
	WC2010 Bundle `yaml:"wc2010" validate:"required"`
	WC2014 Bundle `yaml:"wc2014" validate:"required"`
	WC2018 Bundle `yaml:"wc2018" validate:"required"`
	WC2022 Bundle `yaml:"wc2022" validate:"required"`
}

// For returns the bundle for a source name.
func (s Set) For(source string) (Bundle, bool) {
	switch source {
	case SourceWC2010:
		return s.WC2010, true
	case SourceWC2014:
		return s.WC2014, true
	case SourceWC2018:
		return s.WC2018, true
	case SourceWC2022:
		return s.WC2022, true
	default:
		return Bundle{}, false
	}
}
