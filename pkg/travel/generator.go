package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cartoscope/go-mapagent/pkg/genai"
)

const outlinePrompt = `You are a travel planner. Create a %d-day itinerary for %s.%s
For each day give a short title and 2-4 specific, real, named places to
visit (attractions, restaurants, neighborhoods). Use the exact public
name of each place so it can be found in a place search.

Respond with JSON only, in this shape:
{"days": [{"title": "...", "places": [{"name": "...", "description": "..."}]}]}`

// ModelGenerator asks the generative model for an itinerary outline as
// structured JSON.
type ModelGenerator struct {
	client *genai.Client
}

// NewModelGenerator creates a generator over the given client.
func NewModelGenerator(client *genai.Client) *ModelGenerator {
	return &ModelGenerator{client: client}
}

// GenerateOutline requests and parses the day-by-day outline.
func (g *ModelGenerator) GenerateOutline(ctx context.Context, req Request) (*Outline, error) {
	prefs := ""
	if req.Preferences != "" {
		prefs = fmt.Sprintf(" The traveler's preferences: %s.", req.Preferences)
	}
	prompt := fmt.Sprintf(outlinePrompt, req.Days, req.Destination, prefs)

	resp, err := g.client.Generate(ctx, &genai.GenerateRequest{
		Contents: []genai.Content{
			{Role: "user", Parts: []genai.Part{{Text: prompt}}},
		},
		ResponseMIMEType: "application/json",
		Temperature:      0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("travel: generate outline: %w", err)
	}

	var outline Outline
	text := strings.TrimSpace(resp.Text)
	if err := json.Unmarshal([]byte(text), &outline); err != nil {
		return nil, fmt.Errorf("travel: parse outline: %w", err)
	}
	if len(outline.Days) == 0 {
		return nil, fmt.Errorf("travel: model returned an empty outline")
	}
	return &outline, nil
}

var _ Generator = (*ModelGenerator)(nil)
