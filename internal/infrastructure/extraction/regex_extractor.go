package extraction

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"
)

// RegexExtractor is the local, always-available extraction path. It is
// deliberately best-effort: unmatched fields stay empty and the Normalizer's
// fallbacks take over.
type RegexExtractor struct{}

var _ interfaces.IFieldExtractor = (*RegexExtractor)(nil)

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Collapses runs of spaces and tabs but keeps line breaks: the field
	// patterns anchor their captures on end of line.
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
	trimPunctRe = regexp.MustCompile(`^[:;,.]+|[:;,.]+$`)

	projectNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:project\s*(?:name|title|description)|job\s*(?:name|title))[:\s]*([^\n;]+)`),
		regexp.MustCompile(`(?i)rfp\s*[#№]\s*[\w-]+\s*[-–—:]\s*([^\n;]+)`),
	}
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:project\s*location|location|place|site)[:\s]*([^\n;]+)`),
		regexp.MustCompile(`(?i)in\s*([^\n,]+)(?:\s*(?:county|city|state|subdivision))`),
	}
	completionDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:completion\s*date|target\s*date|work\s*(?:must\s*be\s*)?completed\s*by|deadline)[:\s]*([a-z]+\s*\d{1,2},\s*\d{4}|\d{4}-\d{2}-\d{2})`),
		regexp.MustCompile(`(?i)fully\s*completed\s*by\s*([a-z]+\s*\d{1,2},\s*\d{4}|\d{4}-\d{2}-\d{2})`),
	}
	durationRe = regexp.MustCompile(`(?i)(?:duration|project\s*duration|timeline)\s*(?:\(?\s*weeks?\s*\))?[:\s]*(\d+)`)
	landMileRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:lane\s*[-–—]?\s*mi(?:les?)?|mi(?:les?)?)`)
	widthRe    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:ft|feet|foot)(?:\s*width)?`)
	areaRes    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:area\s*\(?\s*sq\s*ft\s*\)?|square\s*footage)[:\s]*([\d,]+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d+,?\d*)\s*(?:ft²|square\s*feet|sq\s*ft)`),
	}
	materialRe = regexp.MustCompile(`(?i)\b(asphalt|hma|wma|concrete|aggregate\s*base|recycled\s*asphalt|bituminous\s*surface|subbase|geotextile|sealcoat|thermoplastic\s*striping|curb|sidewalk|pavers|drainage\s*pipe|stormwater\s*structure)\b`)
	tonnageRe  = regexp.MustCompile(`(?i)(?:tonnage|quantity\s*tons?)[:\s]*([\d,]+(?:\.\d+)?)\s*(?:tons?)`)
	quantityRe = regexp.MustCompile(`(?i)(\d+,?\d*(?:\.\d+)?)\s*(ft²|ft³|yd³|tons?|lbs?|ft|square\s*feet|cubic\s*yards|linear\s*feet|sq\s*ft|each)\s*(?:of\s*)?(asphalt|hma|concrete|aggregate\s*base|rebar|curb|sidewalk|pavers|drainage\s*pipe|stormwater\s*structure)`)

	scopeRe        = regexp.MustCompile(`(?i)(?:scope\s*of\s*work|project\s*description|work\s*details)[:\s]*([^\n]+(?:\n[^\n]+)*?)(?:\n\s*\n|\n?\s*\z)`)
	requirementsRe = regexp.MustCompile(`(?i)(?:special\s*(?:conditions|notes|requirements)|additional\s*notes)[:\s]*([^\n]+(?:\n[^\n]+)*?)(?:\n\s*\n|\n?\s*\z)`)
)

const sectionLimit = 1000

// Extract never returns an error; the regex path has no failure mode beyond
// leaving fields empty.
func (e *RegexExtractor) Extract(_ context.Context, text string) (estimating.Input, error) {
	flat := hspaceRe.ReplaceAllString(text, " ")

	in := estimating.Input{
		ProjectName:    firstMatch(projectNameRes, flat),
		Location:       firstMatch(locationRes, flat),
		CompletionDate: normalizeDate(firstMatch(completionDateRes, flat)),
		DurationWeeks:  matchGroup(durationRe, flat),
		LandMile:       stripCommas(matchGroup(landMileRe, flat)),
		WidthFt:        stripCommas(matchGroup(widthRe, flat)),
		AreaSqft:       stripCommas(firstMatch(areaRes, flat)),
		MaterialType:   normalizeMaterial(matchGroup(materialRe, flat)),
		Tonnage:        stripCommas(matchGroup(tonnageRe, flat)),
		Scope:          section(scopeRe, text),
		Requirements:   section(requirementsRe, text),
	}
	in.ProjectType = inferProjectType(flat)

	e.extractQuantities(flat, &in)
	return in, nil
}

// extractQuantities collects material/quantity/unit line items and, where a
// line states a primary material in tons (or concrete in cubic yards), also
// promotes it to the tonnage/material fields.
func (e *RegexExtractor) extractQuantities(flat string, in *estimating.Input) {
	for _, m := range quantityRe.FindAllStringSubmatch(flat, -1) {
		qty, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		unit := normalizeUnit(strings.ToLower(m[2]))
		material := normalizeMaterial(strings.ToLower(m[3]))

		in.Quantities = append(in.Quantities, entities.QuantityLine{
			Material: material,
			Quantity: qty,
			Unit:     unit,
		})

		switch {
		case (material == "asphalt" || material == "aggregate base") && unit == "tons":
			in.Tonnage = strconv.FormatFloat(qty, 'f', -1, 64)
			in.MaterialType = material
		case material == "concrete" && unit == "yd³":
			in.MaterialType = material
		}
	}
}

func firstMatch(res []*regexp.Regexp, s string) string {
	for _, re := range res {
		if v := matchGroup(re, s); v != "" {
			return v
		}
	}
	return ""
}

func matchGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return ""
	}
	return trimPunctRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
}

func section(re *regexp.Regexp, text string) string {
	v := matchGroup(re, text)
	if len(v) > sectionLimit {
		v = v[:sectionLimit]
	}
	return v
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

func normalizeUnit(unit string) string {
	switch unit {
	case "square feet", "sq ft", "ft²":
		return "sq ft"
	case "cubic yards", "yd³":
		return "yd³"
	case "linear feet":
		return "ft"
	case "ton":
		return "tons"
	case "lb":
		return "lbs"
	default:
		return unit
	}
}

func normalizeMaterial(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	m = whitespaceRe.ReplaceAllString(m, " ")
	if m == "hma" || m == "wma" {
		return "asphalt"
	}
	return m
}

func inferProjectType(flat string) string {
	lower := strings.ToLower(flat)
	switch {
	case strings.Contains(lower, "sidewalk"), strings.Contains(lower, "driveway"):
		return "sidewalk"
	case strings.Contains(lower, "lane"), strings.Contains(lower, "road"):
		return "road"
	default:
		return ""
	}
}

var dateLayouts = []string{"2006-01-02", "January 2, 2006", "January 2,2006"}

// normalizeDate converts matched date strings to YYYY-MM-DD; anything that
// fails to parse is dropped and the schedule defaults apply downstream.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	candidate := capitalizeMonth(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func capitalizeMonth(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
