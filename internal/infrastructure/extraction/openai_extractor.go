package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

const (
	promptTextLimit = 3500
	extractionModel = openai.GPT4
	requestTimeout  = 45 * time.Second
	maxAttempts     = 2
	retryBaseDelay  = 500 * time.Millisecond
	nameFieldLimit  = 255
	scopeFieldLimit = 1000
)

var jsonFenceRe = regexp.MustCompile("(?s)```json\n(.*?)\n```")

const extractionPrompt = `You are an expert at extracting structured data from construction RFPs. Extract and map all relevant fields from the provided RFP text to the following schema, even if the field names in the RFP differ or are in a different format. Use synonymous terms to map to the schema (e.g., "Job Title" or "Project Description" for "project_name", "Place" or "Site" for "project_location"). If a field is missing, infer it based on context or return an empty string. For quantities, handle multiple materials (e.g., asphalt, concrete) and convert units if necessary (e.g., ft³ to yd³ or tons).

Respond with a JSON object containing these keys:
- project_name (string)
- project_type (string, e.g., 'road', 'sidewalk', 'general')
- project_location (string)
- completion_date (string, format 'YYYY-MM-DD')
- project_duration (string, in weeks)
- land_mile (string, lane miles)
- width (string, in feet)
- project_area (string, in square feet)
- material_type (string, primary material, e.g., 'asphalt', 'concrete')
- tonnage (string, total tonnage for asphalt or aggregate)
- project_scope (string)
- project_requirements (string)
- quantities (array of objects with 'material', 'quantity', 'unit')

Text:
"""%s"""

Return the JSON object. Ensure dates are in 'YYYY-MM-DD' format. For project_type, infer from keywords (e.g., 'driveway' or 'sidewalk' implies 'sidewalk', 'lane' implies 'road'). If quantities are in ft³, convert to yd³ (divide by 27) or tons (use 150 lbs/ft³ for asphalt/concrete, 2000 lbs/ton). Limit scope and requirements to 1000 characters each.`

// extractedPayload is the JSON shape the model is asked for.
type extractedPayload struct {
	ProjectName     string                  `json:"project_name"`
	ProjectType     string                  `json:"project_type"`
	ProjectLocation string                  `json:"project_location"`
	CompletionDate  string                  `json:"completion_date"`
	ProjectDuration string                  `json:"project_duration"`
	LandMile        string                  `json:"land_mile"`
	Width           string                  `json:"width"`
	ProjectArea     string                  `json:"project_area"`
	MaterialType    string                  `json:"material_type"`
	Tonnage         string                  `json:"tonnage"`
	ProjectScope    string                  `json:"project_scope"`
	Requirements    string                  `json:"project_requirements"`
	Quantities      []entities.QuantityLine `json:"quantities"`
}

// OpenAIExtractor asks a GPT model for the structured field dictionary. It is
// the network-bound primary extraction path; the caller falls back to the
// regex extractor when it errors or returns nothing.
type OpenAIExtractor struct {
	client  *openai.Client
	timeout time.Duration
}

var _ interfaces.IFieldExtractor = (*OpenAIExtractor)(nil)

// NewOpenAIExtractor returns nil when no API key is configured; the intake
// pipeline treats a nil extractor as "regex only".
func NewOpenAIExtractor(apiKey string) *OpenAIExtractor {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	return &OpenAIExtractor{client: openai.NewClient(apiKey), timeout: requestTimeout}
}

func (e *OpenAIExtractor) Extract(ctx context.Context, text string) (estimating.Input, error) {
	if len(text) > promptTextLimit {
		text = text[:promptTextLimit]
	}
	prompt := fmt.Sprintf(extractionPrompt, text)

	content, err := e.complete(ctx, prompt)
	if err != nil {
		return estimating.Input{}, err
	}

	if m := jsonFenceRe.FindStringSubmatch(content); m != nil {
		content = m[1]
	}

	var payload extractedPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return estimating.Input{}, fmt.Errorf("parse model response: %w", err)
	}
	return payload.toInput(), nil
}

// complete calls the chat completion endpoint with a timeout and one
// backed-off retry; transient API failures should not immediately push the
// upload onto the regex path.
func (e *OpenAIExtractor) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	delay := retryBaseDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, e.timeout)
		resp, err := e.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model:       extractionModel,
			Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
			Temperature: 0.2,
			MaxTokens:   1500,
		})
		cancel()
		if err == nil {
			if len(resp.Choices) == 0 {
				return "", errors.New("model returned no choices")
			}
			return strings.TrimSpace(resp.Choices[0].Message.Content), nil
		}

		lastErr = err
		if attempt < maxAttempts && ctx.Err() == nil {
			log.Printf("[extraction][openai] attempt %d/%d failed: %v, retrying in %v", attempt, maxAttempts, err, delay)
			time.Sleep(delay)
			delay *= 2
		}
	}
	return "", fmt.Errorf("chat completion failed after %d attempts: %w", maxAttempts, lastErr)
}

func (p extractedPayload) toInput() estimating.Input {
	return estimating.Input{
		ProjectName:    clampField(p.ProjectName, nameFieldLimit),
		ProjectType:    p.ProjectType,
		Location:       clampField(p.ProjectLocation, nameFieldLimit),
		Scope:          clampField(p.ProjectScope, scopeFieldLimit),
		Requirements:   clampField(p.Requirements, scopeFieldLimit),
		MaterialType:   p.MaterialType,
		Tonnage:        p.Tonnage,
		LandMile:       p.LandMile,
		WidthFt:        p.Width,
		AreaSqft:       p.ProjectArea,
		CompletionDate: normalizeDate(p.CompletionDate),
		DurationWeeks:  p.ProjectDuration,
		Quantities:     p.Quantities,
	}
}

func clampField(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
