// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"tripwise/models"
	"tripwise/services/planner"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGateway phrases assistant messages with the Gemini API. The planner
// only depends on the planner.PhrasingGateway contract, never on wording.
type GeminiGateway struct {
	model *genai.GenerativeModel
}

func NewGeminiGateway(apiKey string) (*GeminiGateway, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiGateway{model: model}, nil
}

// Phrase turns an intent plus supporting facts into one short user-facing
// message.
func (g *GeminiGateway) Phrase(ctx context.Context, req planner.PhraseRequest) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// buildPrompt renders the phrasing request as a plain instruction block.
func buildPrompt(req planner.PhraseRequest) string {
	var sb strings.Builder
	sb.WriteString("You are the assistant of a travel booking site, helping a visitor plan a trip.\n")
	sb.WriteString("Write exactly one short, warm, conversational message for the situation below.\n")
	sb.WriteString("Do not use markdown, lists or emoji. Reply with the message only.\n\n")
	sb.WriteString("Situation: " + req.Intent + "\n")
	for k, v := range req.Facts {
		sb.WriteString(fmt.Sprintf("%s: %s\n", k, v))
	}
	if len(req.RecentTurns) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, turn := range req.RecentTurns {
			if turn.Role == models.RoleUser {
				sb.WriteString("visitor: ")
			} else {
				sb.WriteString("assistant: ")
			}
			sb.WriteString(turn.Text + "\n")
		}
	}
	return sb.String()
}
