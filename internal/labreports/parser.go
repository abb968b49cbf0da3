// Package labreports turns uploaded laboratory reports into water parameter
// sets. Reports vary wildly in layout, so parsing is line-oriented: the first
// number after a recognized parameter name wins, later mentions are ignored.
package labreports

import (
	"regexp"
	"strconv"
	"strings"

	"water-backend/water/param"
)

// alias maps a report spelling to its canonical parameter. Longer spellings
// are listed before the abbreviations they contain.
type alias struct {
	Param   param.Parameter
	Pattern *regexp.Regexp
}

var aliases = []alias{
	{param.Solids, lineValue(`total\s+dissolved\s+solids`)},
	{param.Solids, lineValue(`tds`)},
	{param.Solids, lineValue(`solids`)},
	{param.OrganicCarbon, lineValue(`total\s+organic\s+carbon`)},
	{param.OrganicCarbon, lineValue(`organic\s+carbon`)},
	{param.OrganicCarbon, lineValue(`toc`)},
	{param.Trihalomethanes, lineValue(`trihalomethanes?`)},
	{param.Trihalomethanes, lineValue(`thms?`)},
	{param.Chloramines, lineValue(`chloramines?`)},
	{param.Sulfate, lineValue(`sulph?ates?`)},
	{param.Conductivity, lineValue(`conductivity`)},
	{param.Hardness, lineValue(`hardness`)},
	{param.Turbidity, lineValue(`turbidity`)},
	{param.PH, lineValue(`ph`)},
}

func lineValue(name string) *regexp.Regexp {
	// The value is the first number after the parameter name, with an
	// optional separator and unit noise in between.
	return regexp.MustCompile(`(?i)\b` + name + `\b[^0-9\n-]*(-?\d+(?:\.\d+)?)`)
}

// Parsed is the outcome of reading one report.
type Parsed struct {
	Params  param.Set         `json:"params"`
	Found   []param.Parameter `json:"found"`
	Missing []param.Parameter `json:"missing"`
}

// Parse scans report text for water quality parameters.
func Parse(text string) Parsed {
	var set param.Set
	seen := make(map[param.Parameter]bool, len(param.FeatureOrder))

	for _, line := range strings.Split(text, "\n") {
		for _, a := range aliases {
			if seen[a.Param] {
				continue
			}
			m := a.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			v, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			set.Assign(a.Param, v)
			seen[a.Param] = true
		}
	}

	out := Parsed{Params: set}
	for _, p := range param.FeatureOrder {
		if seen[p] {
			out.Found = append(out.Found, p)
		} else {
			out.Missing = append(out.Missing, p)
		}
	}
	return out
}
