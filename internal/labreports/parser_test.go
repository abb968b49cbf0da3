package labreports

import (
	"testing"

	"water-backend/water/param"
)

func TestParseTypicalReport(t *testing.T) {
	text := `Municipal Water Quality Report
pH: 7.2
Hardness 185 mg/L
Total Dissolved Solids: 412 mg/L
Chloramines: 3.1 ppm
Sulphate 210 mg/L
Conductivity: 455 uS/cm
Total Organic Carbon: 9.8 ppm
Trihalomethanes 62.5 ug/L
Turbidity: 2.9 NTU`

	parsed := Parse(text)
	if len(parsed.Missing) != 0 {
		t.Fatalf("expected all parameters found, missing %v", parsed.Missing)
	}
	checks := map[param.Parameter]float64{
		param.PH:              7.2,
		param.Hardness:        185,
		param.Solids:          412,
		param.Chloramines:     3.1,
		param.Sulfate:         210,
		param.Conductivity:    455,
		param.OrganicCarbon:   9.8,
		param.Trihalomethanes: 62.5,
		param.Turbidity:       2.9,
	}
	for p, want := range checks {
		got, ok := parsed.Params.Value(p)
		if !ok {
			t.Fatalf("%s not parsed", p)
		}
		if got != want {
			t.Fatalf("%s: got %v, want %v", p, got, want)
		}
	}
}

func TestParseAbbreviations(t *testing.T) {
	text := "TDS: 520\nTOC 11.2\nTHM: 85"

	parsed := Parse(text)
	if v, ok := parsed.Params.Value(param.Solids); !ok || v != 520 {
		t.Fatalf("TDS alias not mapped to Solids: %v %v", v, ok)
	}
	if v, ok := parsed.Params.Value(param.OrganicCarbon); !ok || v != 11.2 {
		t.Fatalf("TOC alias not mapped to Organic_carbon: %v %v", v, ok)
	}
	if v, ok := parsed.Params.Value(param.Trihalomethanes); !ok || v != 85 {
		t.Fatalf("THM alias not mapped to Trihalomethanes: %v %v", v, ok)
	}
}

// "Sulphate" must not be read as a pH mention.
func TestParsePHNotMatchedInsideSulphate(t *testing.T) {
	parsed := Parse("Sulphate: 240 mg/L")
	if _, ok := parsed.Params.Value(param.PH); ok {
		t.Fatalf("pH must not match inside sulphate")
	}
	if v, ok := parsed.Params.Value(param.Sulfate); !ok || v != 240 {
		t.Fatalf("sulphate not parsed: %v %v", v, ok)
	}
}

func TestParseFirstMentionWins(t *testing.T) {
	parsed := Parse("Turbidity: 2.5 NTU\nTurbidity retest: 4.1 NTU")
	if v, _ := parsed.Params.Value(param.Turbidity); v != 2.5 {
		t.Fatalf("expected first mention 2.5, got %v", v)
	}
}

func TestParseNothingRecognized(t *testing.T) {
	parsed := Parse("No measurable data in this report.")
	if len(parsed.Found) != 0 {
		t.Fatalf("expected nothing found, got %v", parsed.Found)
	}
	if len(parsed.Missing) != len(param.FeatureOrder) {
		t.Fatalf("expected all parameters missing, got %v", parsed.Missing)
	}
}
