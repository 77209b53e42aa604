package ai

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"

	"github.com/lifeofgurpreet/hr-document-generator/internal/config"
)

const (
	defaultChatModel = "gpt-4o-mini"
	requestTimeout   = 30 * time.Second
	maxOutputTokens  = 2000
	// Low temperature biases toward repeatable phrasing across batches.
	temperature = 0.3
)

// Generator attempts to produce polished document prose. Implementations
// must absorb every backend failure into the Result; a degraded backend
// is never allowed to fail a batch.
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, docType, companyName, templateText string, emp Employee) Result
}

// OpenAIGenerator backs Generator with the OpenAI chat completions API.
// Without an API key it is permanently Unavailable (demo mode).
type OpenAIGenerator struct {
	client  openai.Client
	model   string
	prompts config.Prompts
	enabled bool
	logger  *zap.Logger
}

func NewOpenAIGenerator(prompts config.Prompts, logger ...*zap.Logger) *OpenAIGenerator {
	l := zap.L().Named("ai.generator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ai.generator")
	}

	g := &OpenAIGenerator{prompts: prompts, logger: l}

	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		l.Info("OPENAI_API_KEY not set, running in demo mode")
		return g
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL"))
	if model == "" {
		model = defaultChatModel
	}

	g.client = openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithRequestTimeout(requestTimeout),
	)
	g.model = model
	g.enabled = true
	l.Info("generation backend configured", zap.String("model", model))
	return g
}

func (g *OpenAIGenerator) Enabled() bool {
	return g.enabled
}

// Generate performs a single attempt against the backend. No retries:
// any error, including timeout, is reported as Failed and the caller
// falls back to deterministic rendering.
func (g *OpenAIGenerator) Generate(ctx context.Context, docType, companyName, templateText string, emp Employee) Result {
	if !g.enabled {
		return Result{State: Unavailable}
	}

	prompt := BuildPrompt(g.prompts, docType, companyName, templateText, emp)

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxOutputTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		g.logger.Warn("generation request failed",
			zap.String("document_type", docType),
			zap.Error(err),
		)
		return Result{State: Failed, Err: err}
	}
	if len(resp.Choices) == 0 {
		return Result{State: Failed, Err: errors.New("no choices returned")}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return Result{State: Failed, Err: errors.New("empty completion")}
	}

	g.logger.Debug("generation succeeded",
		zap.String("document_type", docType),
		zap.Int("length", len(text)),
	)
	return Result{State: Generated, Text: text}
}
