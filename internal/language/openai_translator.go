package language

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openAIRequestTimeout = 60 * time.Second

// OpenAITranslator implements the translation capability with a chat
// completion call. It is an optional backend; the pipeline works
// without it.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(apiKey string) *OpenAITranslator {
	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(config),
		model:  openai.GPT4oMini,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"Translate the user's text from %s to %s. Reply with the translation only.", from, to),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("[OpenAITranslator] completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("[OpenAITranslator] empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
