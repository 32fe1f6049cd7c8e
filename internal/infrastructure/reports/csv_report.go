// Package reports renders persisted projects as downloadable CSV and PDF
// documents.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// WriteCSV renders the field/value report the original dashboard exports.
func WriteCSV(p entities.Project) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Project Report", "Project ID: " + p.ID},
		{},
		{"Field", "Value"},
		{"Project Name", p.Name},
		{"Project Type", p.Type},
		{"Location", p.Location},
		{"Submitted Date", p.Submitted.Format("2006-01-02")},
		{"Status", string(p.Status)},
		{"Estimated Cost", p.Cost},
		{"Completion Date", p.CompletionDate.Format("2006-01-02")},
		{"Land-Mile", formatFloat(p.LandMile)},
		{"Width (ft)", formatFloat(p.Width)},
		{"Area (sq ft)", formatFloat(p.Area)},
		{},
		{"Material Estimates", "Quantity"},
	}
	rows = append(rows, materialRows(p)...)
	rows = append(rows,
		[]string{"Management Hours", fmt.Sprint(p.Labor.ManagementHours)},
		[]string{"Preparation Hours", fmt.Sprint(p.Labor.PrepHours)},
		[]string{"Paving Hours", fmt.Sprint(p.Labor.PavingHours)},
		[]string{"Finishing Hours", fmt.Sprint(p.Labor.FinishingHours)},
		[]string{"Profit Margin", p.ProfitMargin},
		[]string{"Success Probability", p.SuccessProbability},
		[]string{"Scope", p.Scope},
		[]string{"Requirements", p.Requirements},
	)

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// materialRows lists only the quantities relevant to the project's material
// family, labeled with their units.
func materialRows(p entities.Project) [][]string {
	material := strings.ToLower(p.Material)
	var rows [][]string

	add := func(label, key, unit string) {
		if v, ok := p.Materials[key]; ok && v > 0 {
			rows = append(rows, []string{label, fmt.Sprintf("%s %s", formatFloat(v), unit)})
		}
	}

	switch {
	case material == "bituminous surface":
		add("Bituminous Surface", "bituminous_tons", "tons")
		add("Aggregate", "aggregate_tons", "tons")
	case strings.Contains(material, "asphalt") || strings.Contains(material, "bituminous"):
		add("Asphalt", "asphalt_tons", "tons")
		add("Aggregate", "aggregate_tons", "tons")
	case strings.Contains(material, "concrete"):
		add("Concrete", "concrete_yds", "cubic yards")
		add("Rebar", "rebar_lbs", "lbs")
	case material == "sealcoat":
		add("Sealcoat", "sealcoat_sqft", "sq ft")
	}
	return rows
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
