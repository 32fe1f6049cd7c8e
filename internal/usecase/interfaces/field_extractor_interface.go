package interfaces

import (
	"context"

	"github.com/paveiq/bidmaster/internal/domain/estimating"
)

// IFieldExtractor turns raw RFP document text into the loose field dictionary
// the estimation engine accepts. Implementations are best-effort: missing or
// malformed fields come back empty, and the Normalizer tolerates that.
//
// Two implementations exist: the OpenAI extractor (network-bound, may fail)
// and the regex extractor used as its local fallback.

type IFieldExtractor interface {
	Extract(ctx context.Context, text string) (estimating.Input, error)
}
