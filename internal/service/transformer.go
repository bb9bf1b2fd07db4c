package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"shadownet/burnerhub/internal/config"
	"shadownet/burnerhub/internal/model"
)

// Transformer rewrites a message into a burner persona's voice. It is a
// best-effort enrichment: on any failure the original text comes back
// unchanged and the calling request proceeds.
type Transformer interface {
	Transform(ctx context.Context, originalContent string, profile *model.BurnerProfile) string
}

// NewTransformer builds the LLM-backed transformer, or a pass-through one
// when no API key is configured.
func NewTransformer(cfg config.TransformerConfig, logger *zap.Logger) (Transformer, error) {
	if cfg.APIKey == "" {
		logger.Warn("transformer API key missing, posts will keep their original text")
		return NewPassthroughTransformer(), nil
	}

	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create transformer model: %w", err)
	}
	return NewLLMTransformer(llm, cfg.Temperature, cfg.MaxTokens, logger), nil
}

type llmTransformer struct {
	llm         llms.Model
	temperature float64
	maxTokens   int
	logger      *zap.Logger
}

// NewLLMTransformer wraps an existing model; tests inject fakes here.
func NewLLMTransformer(llm llms.Model, temperature float64, maxTokens int, logger *zap.Logger) Transformer {
	return &llmTransformer{
		llm:         llm,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

func (t *llmTransformer) Transform(ctx context.Context, originalContent string, profile *model.BurnerProfile) string {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, personaPrompt(profile)),
		llms.TextParts(llms.ChatMessageTypeHuman, originalContent),
	}
	resp, err := t.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(t.temperature),
		llms.WithMaxTokens(t.maxTokens),
	)
	if err != nil {
		t.logger.Warn("message transformation failed, keeping original text",
			zap.String("codename", profile.Codename), zap.Error(err))
		return originalContent
	}
	if len(resp.Choices) == 0 {
		t.logger.Warn("transformer returned no choices, keeping original text",
			zap.String("codename", profile.Codename))
		return originalContent
	}

	transformed := strings.TrimSpace(resp.Choices[0].Content)
	if transformed == "" {
		t.logger.Warn("transformer returned empty content, keeping original text",
			zap.String("codename", profile.Codename))
		return originalContent
	}
	return transformed
}

func personaPrompt(profile *model.BurnerProfile) string {
	return fmt.Sprintf(`You are a message transformer that rewrites messages in the style of a specific persona.

Persona details:
- Codename: %s
- Personality: %s
- Background: %s

Your task is to rewrite the provided message while:
1. Maintaining the core information and intent
2. Adapting the writing style to match the persona's personality
3. Incorporating relevant background knowledge
4. Keeping the spy/intelligence theme

Respond with ONLY the transformed message, no explanations or additional text.`,
		profile.Codename, profile.Personality, profile.Background)
}

type passthroughTransformer struct{}

// NewPassthroughTransformer returns a transformer that leaves text untouched.
func NewPassthroughTransformer() Transformer {
	return passthroughTransformer{}
}

func (passthroughTransformer) Transform(_ context.Context, originalContent string, _ *model.BurnerProfile) string {
	return originalContent
}
