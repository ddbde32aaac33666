package ai

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mindclash/debate-arena/core"
	"github.com/mindclash/debate-arena/personality"
)

// minArgumentLength rejects degenerate model output before it reaches a round.
const minArgumentLength = 20

// DebateContext is everything a personality may see when producing an
// argument: the topic and fully completed prior rounds. Arguments from
// peers in the same round are never included.
type DebateContext struct {
	Topic       string
	RoundNumber int
	MaxRounds   int
	PriorRounds []core.Round
}

// Generator produces arguments for the debate engine. Implementations never
// return an error: any generation problem yields a degraded argument with
// deterministic fallback text instead, so one personality's failure cannot
// block a round.
type Generator interface {
	GenerateArgument(ctx context.Context, p personality.Personality, dc DebateContext) core.Argument
	Fallback(p personality.Personality, topic string, round int) core.Argument
	JudgeReasoning(ctx context.Context, topic string, args []core.Argument, winner string) string
}

// Completer is the single operation consumed from the model backend.
type Completer interface {
	Complete(ctx context.Context, model, system, prompt string) (string, error)
}

// LLMConfig holds configuration for LLM interactions.
type LLMConfig struct {
	PrimaryModel      string
	BackupModel       string
	MaxTokens         int
	Temperature       float32
	AttemptTimeout    time.Duration
	MaxArgumentLength int // in runes
	SerpAPIKey        string
}

// DefaultLLMConfig returns standard LLM configuration.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		PrimaryModel:      "gpt-4o-mini",
		BackupModel:       openai.GPT3Dot5Turbo,
		MaxTokens:         160,
		Temperature:       0.8,
		AttemptTimeout:    30 * time.Second,
		MaxArgumentLength: 500,
	}
}

type openAICompleter struct {
	client      *openai.Client
	maxTokens   int
	temperature float32
}

func (c *openAICompleter) Complete(ctx context.Context, model, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion from %s", model)
	}
	return resp.Choices[0].Message.Content, nil
}

// ArgumentGenerator generates debate arguments with three-tier degradation:
// primary model, then backup model, then static fallback text.
type ArgumentGenerator struct {
	completer Completer
	cfg       LLMConfig
}

// NewArgumentGenerator builds a generator backed by OpenAI. With an empty
// API key every call degrades straight to fallback text.
func NewArgumentGenerator(apiKey string, cfg LLMConfig) *ArgumentGenerator {
	if apiKey == "" {
		log.Println("Warning: no OpenAI API key, generator will produce fallback arguments only")
		return &ArgumentGenerator{cfg: cfg}
	}
	return &ArgumentGenerator{
		completer: &openAICompleter{
			client:      openai.NewClient(apiKey),
			maxTokens:   cfg.MaxTokens,
			temperature: cfg.Temperature,
		},
		cfg: cfg,
	}
}

// NewArgumentGeneratorWithCompleter wires a custom backend, used by tests.
func NewArgumentGeneratorWithCompleter(c Completer, cfg LLMConfig) *ArgumentGenerator {
	return &ArgumentGenerator{completer: c, cfg: cfg}
}

// GenerateArgument produces one argument for p. Model tiers are tried in
// order, each wrapped in its own timeout; when all tiers fail the result is
// a degraded fallback argument, never an error.
func (g *ArgumentGenerator) GenerateArgument(ctx context.Context, p personality.Personality, dc DebateContext) core.Argument {
	if g.completer == nil {
		return g.Fallback(p, dc.Topic, dc.RoundNumber)
	}

	prompt := buildPrompt(p, dc)
	if g.cfg.SerpAPIKey != "" {
		if findings := researchContext(dc.Topic, g.cfg.SerpAPIKey); findings != "" {
			prompt = findings + "\n" + prompt
		}
	}

	for _, model := range []string{g.cfg.PrimaryModel, g.cfg.BackupModel} {
		if model == "" {
			continue
		}
		text, err := g.complete(ctx, model, p.SystemPrompt, prompt)
		if err != nil {
			log.Printf("Argument generation with %s failed for %s: %v", model, p.Name, err)
			continue
		}
		text = cleanArgument(text)
		if utf8.RuneCountInString(text) < minArgumentLength {
			log.Printf("Argument from %s for %s too short, trying next tier", model, p.Name)
			continue
		}
		return core.Argument{
			PersonalityID: p.Name,
			RoundNumber:   dc.RoundNumber,
			Content:       truncateArgument(text, g.cfg.MaxArgumentLength),
			Timestamp:     time.Now(),
		}
	}

	return g.Fallback(p, dc.Topic, dc.RoundNumber)
}

// JudgeReasoning generates an impartial analysis naming winner as the
// strongest debater. Falls back to canned reasoning when the models fail.
func (g *ArgumentGenerator) JudgeReasoning(ctx context.Context, topic string, args []core.Argument, winner string) string {
	if g.completer != nil {
		prompt := buildJudgePrompt(topic, args, winner)
		for _, model := range []string{g.cfg.PrimaryModel, g.cfg.BackupModel} {
			if model == "" {
				continue
			}
			text, err := g.complete(ctx, model, judgeSystemPrompt, prompt)
			if err != nil {
				log.Printf("Judge reasoning with %s failed: %v", model, err)
				continue
			}
			if text = cleanArgument(text); text != "" {
				return truncateArgument(text, g.cfg.MaxArgumentLength)
			}
		}
	}
	return fmt.Sprintf("After careful consideration of all arguments presented on %q, %s presented the most compelling case with strong reasoning and evidence.", topic, winner)
}

func (g *ArgumentGenerator) complete(ctx context.Context, model, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.AttemptTimeout)
	defer cancel()
	return g.completer.Complete(ctx, model, system, prompt)
}
