// Package llm defines the inference provider boundary: a single structured
// request/response call. The production client talks to Gemini over REST;
// tests inject MockClient. Nothing above this package knows which provider
// is in use.
package llm

import "context"

// Part is one piece of request content: either plain text or inline binary
// data (audio) with its declared media type.
type Part struct {
	Text   string
	Inline *InlineData
}

// InlineData carries binary content for multimodal requests.
type InlineData struct {
	MIMEType string
	Data     []byte
}

// TextPart builds a text content part.
func TextPart(text string) Part { return Part{Text: text} }

// InlinePart builds an inline binary content part.
func InlinePart(mimeType string, data []byte) Part {
	return Part{Inline: &InlineData{MIMEType: mimeType, Data: data}}
}

// Request is the input to an Infer call. Schema, when set, constrains the
// provider to emit a single JSON document matching it.
type Request struct {
	Model       string
	System      string
	Parts       []Part
	Schema      *Schema
	Temperature *float64
}

// Response is the provider's raw structured output.
type Response struct {
	Text string
}

// Client is the interface all inference providers implement.
type Client interface {
	// Infer sends a request and returns the full response.
	Infer(ctx context.Context, req Request) (*Response, error)

	// Name returns the provider name (e.g., "gemini").
	Name() string
}
