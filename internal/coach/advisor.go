package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sojin-dev/maumlog/internal/emotion"
)

const advisorSystemPrompt = "당신은 따뜻하고 공감적인 심리 상담사입니다. 사용자의 감정과 일기 내용을 바탕으로 위로와 조언을 제공하세요."

// Advisor serves the advice endpoint. Demo mode (and a missing credential)
// pins it to the canned per-emotion advice; otherwise the chat model is
// asked, with the canned advice as the failure fallback.
type Advisor struct {
	chat     ChatAPI
	demoMode bool
}

func NewAdvisor(chat ChatAPI, demoMode bool) *Advisor {
	return &Advisor{chat: chat, demoMode: demoMode}
}

// Advise returns a short piece of advice for an emotion label (Korean
// display name) and diary content. It always succeeds.
func (a *Advisor) Advise(ctx context.Context, emotionLabel, content string) string {
	canned := cannedAdvice(emotionLabel)
	if a.demoMode || a.chat == nil {
		return canned
	}

	resp, err := a.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: advisorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(
				"현재 감정: %s\n일기 내용: %s\n\n위로와 조언을 2-3문장으로 해주세요.", emotionLabel, content)},
		},
		Temperature: chatTemperature,
	})
	if err != nil {
		slog.Warn("[Advisor] Chat completion failed, returning canned advice",
			slog.String("error", err.Error()))
		return canned
	}
	if len(resp.Choices) == 0 {
		return canned
	}

	advice := strings.TrimSpace(resp.Choices[0].Message.Content)
	if advice == "" {
		return canned
	}
	return advice
}

func cannedAdvice(emotionLabel string) string {
	cat, ok := emotion.FromDisplayName(emotionLabel)
	if !ok {
		return emotion.DefaultCannedAdvice
	}
	return emotion.Lookup(cat).CannedAdvice
}
