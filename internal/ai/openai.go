package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/credvet/credvet/internal/model"
)

// OpenAIAssessor implements the Assessor interface with OpenAI models
type OpenAIAssessor struct {
	client *openai.Client
	config Config
}

// NewOpenAIAssessor creates an OpenAI-backed assessor
func NewOpenAIAssessor(config Config) (*OpenAIAssessor, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIAssessor{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the assessor name
func (a *OpenAIAssessor) Name() string {
	return "openai"
}

// IsAvailable checks the provider with a lightweight API call
func (a *OpenAIAssessor) IsAvailable(ctx context.Context) bool {
	_, err := a.client.ListModels(ctx)
	return err == nil
}

// Assess runs one AI-assisted validation pass
func (a *OpenAIAssessor) Assess(ctx context.Context, personal model.PersonalInfo, academic model.AcademicInfo, docs model.DocumentSet) (*model.ValidationReport, error) {
	chatModel := a.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := a.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1500
	}

	timeout := time.Duration(a.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(personal, academic, docs),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2, // favor consistent, parseable output
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	report, err := ParseReport(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	report.CreatedAt = time.Now().UTC()
	return report, nil
}
