package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/coolbeans/lexstruct/pkg/generate"
	"github.com/coolbeans/lexstruct/pkg/schema"
	"github.com/coolbeans/lexstruct/pkg/segment"
)

// Extractor drives the structured-generation collaborator over a sequence
// of article units, emitting exactly one result element per unit — a decoded
// JSON value on success, an error record on failure. Units are processed
// strictly in order, one in flight at a time.
type Extractor struct {
	client  generate.Client
	limiter Limiter

	// DocumentContext is the header metadata passed to every call as
	// auxiliary grounding text. Optional.
	DocumentContext string

	// Progress, when set, is called before each unit is extracted.
	Progress func(index, total int)

	runID string
}

// NewExtractor builds an extractor. A nil limiter disables pacing.
func NewExtractor(client generate.Client, limiter Limiter) *Extractor {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Extractor{
		client:  client,
		limiter: limiter,
		runID:   uuid.NewString(),
	}
}

// RunID identifies this extraction run in logs and summaries.
func (e *Extractor) RunID() string {
	return e.runID
}

// Run extracts one result per unit. Per-unit failures are captured as error
// records and never abort the run; the only returned error is cancellation,
// in which case the results accumulated so far are still returned and remain
// valid for persistence.
func (e *Extractor) Run(ctx context.Context, units []segment.Unit) ([]any, error) {
	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text()
	}
	return e.RunTexts(ctx, texts)
}

// RunTexts is Run over pre-assembled unit texts; the regex-split
// segmentation path feeds its raw segments through here.
func (e *Extractor) RunTexts(ctx context.Context, texts []string) ([]any, error) {
	results := make([]any, 0, len(texts))

	for i, text := range texts {
		if i > 0 {
			if err := e.limiter.Wait(ctx); err != nil {
				return results, err
			}
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if e.Progress != nil {
			e.Progress(i, len(texts))
		}
		results = append(results, e.extractOne(ctx, text, i))
	}

	return results, nil
}

// extractOne issues one generation call and maps its outcome to exactly one
// result element. Article numbering in failure messages is 1-based.
func (e *Extractor) extractOne(ctx context.Context, text string, index int) any {
	resp, err := e.client.Generate(ctx, generate.Request{
		System: generate.SystemContract,
		Prompt: generate.BuildPrompt(text, e.DocumentContext),
	})
	if err != nil {
		// Transport, timeout, or service error: nothing was received,
		// so there is no raw payload to keep.
		return schema.NewErrorRecord(fmt.Sprintf("Other error for article %d", index+1), "")
	}

	var decoded any
	if err := json.Unmarshal([]byte(resp), &decoded); err != nil {
		// The raw text is retained so the unit can be repaired offline
		// without re-calling the service.
		return schema.NewErrorRecord(fmt.Sprintf("Failed to parse JSON for article %d", index+1), resp)
	}
	return decoded
}
