package clients

import (
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	GROQ_BASE_URL = "https://api.groq.com/openai/v1"

	groqRequestTimeout = 30 * time.Second
)

// NewGroqClient builds an OpenAI-compatible chat client pointed at Groq.
func NewGroqClient(apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = GROQ_BASE_URL
	config.HTTPClient = &http.Client{
		Timeout: groqRequestTimeout,
	}

	slog.Info("[GroqClient] Chat client initialized",
		slog.String("base_url", GROQ_BASE_URL),
		slog.Duration("timeout", groqRequestTimeout))

	return openai.NewClientWithConfig(config)
}
