package coach

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sojin-dev/maumlog/internal/emotion"
	"github.com/sojin-dev/maumlog/internal/models"
)

const (
	// ChatModel is the Groq-hosted model used for coaching replies.
	ChatModel = "llama-3.3-70b-versatile"

	chatMaxTokens   = 200
	chatTemperature = 0.8

	// Remote replies shorter than this are treated as unusable and
	// replaced by a template.
	minReplyRunes = 10
)

// styleDirectives is appended to every per-emotion persona prompt.
const styleDirectives = "다음 지침을 따라주세요:\n" +
	"- 2-3문장으로 공감적이고 따뜻하게 응답하세요\n" +
	"- 사용자의 감정을 인정하고 받아들여주세요\n" +
	"- 구체적이고 실용적인 질문이나 제안을 포함하세요\n" +
	"- 한국어로 자연스럽게 대화하세요\n" +
	"- 전문적이지만 친근한 어조를 유지하세요"

// ChatAPI is the chat-completion surface of the Groq/OpenAI client, kept
// narrow so tests can stub it.
type ChatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Composer produces coaching replies: the remote chat model when it is
// configured and answers usably, otherwise the per-emotion template pool.
type Composer struct {
	chat ChatAPI // nil when no credential is configured
	pick func(n int) int
}

func NewComposer(chat ChatAPI) *Composer {
	return &Composer{
		chat: chat,
		pick: rand.Intn,
	}
}

// Compose builds a full coaching turn. It fails only on an empty message;
// upstream failures fall back to templates and are never surfaced.
func (c *Composer) Compose(ctx context.Context, req models.CoachRequest) (models.CoachReply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return models.CoachReply{}, fmt.Errorf("empty message")
	}

	cat, known := emotion.FromDisplayName(req.Emotion)
	if !known {
		cat = emotion.Calm
	}
	bundle := emotion.Lookup(cat)

	var reply string
	if c.chat != nil {
		remote, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: ChatModel,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: bundle.SystemPrompt + "\n\n" + styleDirectives},
				{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(req)},
			},
			MaxTokens:   chatMaxTokens,
			Temperature: chatTemperature,
		})
		if err != nil {
			slog.Warn("[Composer] Chat completion failed, using template fallback",
				slog.String("error", err.Error()))
		} else if len(remote.Choices) > 0 {
			reply = strings.TrimSpace(remote.Choices[0].Message.Content)
		}
	}

	if utf8.RuneCountInString(reply) < minReplyRunes {
		pool := fallbackReplies(cat, req.Message)
		reply = pool[c.pick(len(pool))]
	}

	insight := bundle.Insight
	if !known {
		insight = emotion.DefaultInsight
	}

	return models.CoachReply{
		Message:           reply,
		FollowUpQuestions: bundle.Questions,
		Suggestions:       bundle.Suggestions,
		Insight:           insight,
	}, nil
}

func buildUserPrompt(req models.CoachRequest) string {
	var b strings.Builder
	if req.ConversationContext != "" {
		b.WriteString("이전 대화 맥락: " + req.ConversationContext + "\n\n")
	}
	if req.Emotion != "" {
		b.WriteString("현재 사용자의 감정 상태: " + req.Emotion + "\n")
	}
	fmt.Fprintf(&b, "사용자 메시지: %q\n\n위 메시지에 공감적으로 응답해주세요.", req.Message)
	return b.String()
}
