// Package generate drives the structured-generation collaborator that turns
// article text into schema-conformant JSON.
package generate

import "context"

// Request carries the two text parts of one structured-generation call.
// Temperature zero and the JSON response constraint are pinned by the
// backends themselves, not configurable per request.
type Request struct {
	System string // fixed instruction contract
	Prompt string // unit text plus optional document context
}

// Client is the structured-generation collaborator. Generate issues one
// request and returns the raw text payload of a single model response; the
// caller is responsible for parsing it as JSON and for pacing consecutive
// calls. Implementations must not retry on their own.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Model() string
}
