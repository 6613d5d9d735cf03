package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campus-start/internal/domain/chat"
	"campus-start/internal/domain/idea"

	"google.golang.org/genai"
)

var ErrUnavailable = errors.New("assistant unavailable")

// Assistant answers brainstorming queries strictly in the context of one
// idea, given the stored conversation history.
type Assistant interface {
	Ask(ctx context.Context, i idea.Idea, history []chat.Message, query string) (string, error)
}

type geminiAssistant struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (Assistant, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("empty gemini api key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	if strings.TrimSpace(model) == "" {
		model = "gemini-2.5-flash-lite"
	}
	return &geminiAssistant{client: client, model: model}, nil
}

func (g *geminiAssistant) Ask(ctx context.Context, i idea.Idea, history []chat.Message, query string) (string, error) {
	if g == nil || g.client == nil {
		return "", ErrUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("empty query")
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == chat.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(query, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.7),
		TopK:              genai.Ptr[float32](40),
		TopP:              genai.Ptr[float32](0.95),
		MaxOutputTokens:   2048,
		SystemInstruction: genai.NewContentFromText(systemPrompt(i), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text in response", ErrUnavailable)
	}
	return text, nil
}

func systemPrompt(i idea.Idea) string {
	return fmt.Sprintf(`You are an expert brainstormer and domain-aware assistant.

IDEA CONTEXT:
- Title: %s
- Description: %s
- Domain(s): %s
- Required Skills: %s
- Roles Needed: %s
- Team Size: %d

YOUR TASK:
- Answer user queries STRICTLY in the context of this idea
- Provide actionable, structured responses
- Maintain continuity using conversation history
- Be clear about uncertainties instead of guessing

Stay focused on the idea. Do NOT give generic advice.`,
		i.Title,
		i.Description,
		strings.Join(i.DomainTags, ", "),
		strings.Join(i.RequiredSkills, ", "),
		strings.Join(i.RolesNeeded, ", "),
		i.TeamSize,
	)
}
