package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// AminataClient enveloppe le modèle qui porte la voix d'Aminata
type AminataClient struct {
	Chat llms.Model
}

func NewAminataClient(apiKey, apiEndpoint, model string) (*AminataClient, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if apiEndpoint != "" {
		opts = append(opts, openai.WithBaseURL(apiEndpoint))
	}

	chat, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &AminataClient{
		Chat: chat,
	}, nil
}
