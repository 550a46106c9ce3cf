package coach

import (
	"context"
	"fmt"
	"testing"

	"github.com/sojin-dev/maumlog/internal/emotion"
)

func TestAdviseWithoutChatModel(t *testing.T) {
	t.Parallel()

	a := NewAdvisor(nil, false)

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"happiness", "행복", emotion.Lookup(emotion.Happiness).CannedAdvice},
		{"anger", "분노", emotion.Lookup(emotion.Anger).CannedAdvice},
		{"unknown label", "설렘", emotion.DefaultCannedAdvice},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := a.Advise(context.Background(), tt.label, "오늘의 일기"); got != tt.want {
				t.Errorf("Advise = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdviseDemoModeSkipsChatModel(t *testing.T) {
	t.Parallel()

	chat := &stubChatAPI{reply: "원격 모델의 답변입니다. 이 답변은 쓰이면 안 됩니다."}
	a := NewAdvisor(chat, true)

	got := a.Advise(context.Background(), "슬픔", "힘든 하루였다")
	if got != emotion.Lookup(emotion.Sadness).CannedAdvice {
		t.Errorf("Advise = %q, want the canned sadness advice in demo mode", got)
	}
	if chat.req.Model != "" {
		t.Error("demo mode must not call the chat model")
	}
}

func TestAdviseUsesRemoteReply(t *testing.T) {
	t.Parallel()

	chat := &stubChatAPI{reply: "  충분히 힘드셨겠어요. 오늘은 자신에게 조금 더 너그러워지세요.  "}
	a := NewAdvisor(chat, false)

	got := a.Advise(context.Background(), "슬픔", "힘든 하루였다")
	if want := "충분히 힘드셨겠어요. 오늘은 자신에게 조금 더 너그러워지세요."; got != want {
		t.Errorf("Advise = %q, want trimmed remote answer %q", got, want)
	}
	if chat.req.Model != ChatModel {
		t.Errorf("model = %q, want %q", chat.req.Model, ChatModel)
	}
}

func TestAdviseRemoteFailureFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		chat *stubChatAPI
	}{
		{"error", &stubChatAPI{err: fmt.Errorf("upstream 500")}},
		{"blank reply", &stubChatAPI{reply: "   "}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAdvisor(tt.chat, false)
			got := a.Advise(context.Background(), "불안", "걱정이 많다")
			if got != emotion.Lookup(emotion.Anxiety).CannedAdvice {
				t.Errorf("Advise = %q, want the canned anxiety advice", got)
			}
		})
	}
}
