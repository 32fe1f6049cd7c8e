package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/paveiq/bidmaster/internal/domain/estimating"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"
)

var (
	ErrDocumentParse    = errors.New("document parse failed")
	ErrNothingExtracted = errors.New("no usable fields extracted from document")
)

// IIntakeUseCase is the RFP upload pipeline: document text extraction, LLM
// field extraction with a regex fallback, defaulting, then the estimation
// pipeline.

type IIntakeUseCase interface {
	EstimateFromDocument(ctx context.Context, filename string, data []byte) (EstimateResult, error)
}

type IntakeUseCase struct {
	parser    interfaces.IDocumentParser
	extractor interfaces.IFieldExtractor // network-bound, may be nil
	fallback  interfaces.IFieldExtractor // local regex path
	estimates IEstimateUseCase
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	parser interfaces.IDocumentParser,
	extractor interfaces.IFieldExtractor,
	fallback interfaces.IFieldExtractor,
	estimates IEstimateUseCase,
) *IntakeUseCase {
	return &IntakeUseCase{parser: parser, extractor: extractor, fallback: fallback, estimates: estimates}
}

// EstimateFromDocument turns an uploaded RFP into a persisted estimate. An
// extractor failure is never surfaced directly: the regex fallback runs
// whenever the primary extractor errors or comes back empty, and only two
// empty results in a row reject the document.
func (u *IntakeUseCase) EstimateFromDocument(ctx context.Context, filename string, data []byte) (EstimateResult, error) {
	log.Printf("[intake][usecase] processing file=%q size=%d", filename, len(data))

	text, err := u.parser.Text(filename, data)
	if err != nil {
		log.Printf("[intake][usecase] parse failed file=%q err=%v", filename, err)
		return EstimateResult{}, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	fields, ok := u.extractFields(ctx, text)
	if !ok {
		log.Printf("[intake][usecase] no fields extracted file=%q", filename)
		return EstimateResult{}, ErrNothingExtracted
	}

	applyDocumentDefaults(&fields, filename)
	return u.estimates.Estimate(ctx, fields)
}

func (u *IntakeUseCase) extractFields(ctx context.Context, text string) (estimating.Input, bool) {
	if u.extractor != nil {
		fields, err := u.extractor.Extract(ctx, text)
		if err == nil && !extractedEmpty(fields) {
			log.Printf("[intake][usecase] primary extractor succeeded")
			return fields, true
		}
		if err != nil {
			log.Printf("[intake][usecase] primary extractor failed, using fallback: %v", err)
		} else {
			log.Printf("[intake][usecase] primary extractor returned nothing, using fallback")
		}
	}

	fields, err := u.fallback.Extract(ctx, text)
	if err != nil || extractedEmpty(fields) {
		return estimating.Input{}, false
	}
	return fields, true
}

// applyDocumentDefaults fills the gaps extraction left: identity defaults and
// a last-resort area summed from square-foot quantity line items.
func applyDocumentDefaults(in *estimating.Input, filename string) {
	if in.ProjectName == "" {
		in.ProjectName = "Project from " + filename
	}
	if in.ProjectType == "" {
		in.ProjectType = "road"
	}
	if in.Location == "" {
		in.Location = "Unknown Location"
	}
	if in.Scope == "" {
		in.Scope = "Scope not extracted"
	}

	if estimating.CoerceFloat(in.AreaSqft, 0) > 0 {
		return
	}
	if estimating.CoerceFloat(in.LandMile, 0) > 0 && estimating.CoerceFloat(in.WidthFt, 0) > 0 {
		return
	}
	var totalArea float64
	for _, q := range in.Quantities {
		if (q.Unit == "sq ft" || q.Unit == "ft²") && q.Quantity > 0 {
			totalArea += q.Quantity
		}
	}
	if totalArea > 0 {
		in.AreaSqft = strconv.FormatFloat(totalArea, 'f', -1, 64)
	}
}

func extractedEmpty(in estimating.Input) bool {
	return in.ProjectName == "" &&
		in.AreaSqft == "" &&
		in.LandMile == "" &&
		in.Tonnage == "" &&
		in.MaterialType == "" &&
		len(in.Quantities) == 0
}
