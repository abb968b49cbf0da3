package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"water-backend/water/param"
)

// exportTimeLayout is the timestamp format of the flat export row.
const exportTimeLayout = "2006-01-02 15:04:05"

// ExportHeaders returns the column order of the flat export row: the nine
// parameters in canonical order followed by the derived fields.
func ExportHeaders() []string {
	headers := make([]string, 0, len(param.FeatureOrder)+7)
	for _, p := range param.FeatureOrder {
		headers = append(headers, string(p))
	}
	return append(headers,
		"Prediction",
		"Confidence",
		"Safe_Probability",
		"Unsafe_Probability",
		"Risk_Factors_Count",
		"Risk_Factors",
		"Timestamp",
	)
}

// ExportRow flattens the assessment into one row matching ExportHeaders.
// Parameter values are rendered exactly (shortest round-trip form); missing
// parameters export as empty cells.
func (a Assessment) ExportRow() []string {
	row := make([]string, 0, len(param.FeatureOrder)+7)
	for _, p := range param.FeatureOrder {
		v, ok := a.Params.Value(p)
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
	}

	prediction := "Unsafe"
	if a.Prediction.Potable {
		prediction = "Safe"
	}

	factors := "None"
	if len(a.RiskFactors) > 0 {
		messages := make([]string, len(a.RiskFactors))
		for i, r := range a.RiskFactors {
			messages[i] = r.Message
		}
		factors = strings.Join(messages, "; ")
	}

	return append(row,
		prediction,
		fmt.Sprintf("%.1f%%", a.Confidence),
		fmt.Sprintf("%.3f", a.Prediction.PPotable),
		fmt.Sprintf("%.3f", a.Prediction.PNotPotable),
		strconv.Itoa(a.RiskCount),
		factors,
		a.GeneratedAt.Format(exportTimeLayout),
	)
}
