package analysis

import (
	"strings"
	"testing"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no terminator", "  그냥 적어본 메모  ", "그냥 적어본 메모"},
		{"single sentence", "오늘은 좋은 날이었다.", "오늘은 좋은 날이었다."},
		{"mixed terminators", "좋았다! 정말? 그랬다.", "좋았다! 정말? 그랬다."},
		{"repeated terminators stay attached", "진짜... 힘들었다!", "진짜... 힘들었다!"},
		{
			"caps at five sentences",
			"하나. 둘. 셋. 넷. 다섯. 여섯. 일곱.",
			"하나. 둘. 셋. 넷. 다섯.",
		},
		{
			"trailing fragment without terminator is dropped",
			"첫 문장이다. 그리고 끝나지 않은 조각",
			"첫 문장이다.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Excerpt(tt.in); got != tt.want {
				t.Errorf("Excerpt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markdown link keeps text", "see [the docs](https://example.com/x) here", "see the docs here"},
		{"bare url removed", "visit https://example.com now", "visit  now"},
		{"www url removed", "visit www.example.com now", "visit  now"},
		{"plain text untouched", "no links at all", "no links at all"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RemoveLinks(tt.in); got != tt.want {
				t.Errorf("RemoveLinks(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertMarkdownToText(t *testing.T) {
	t.Parallel()

	got := ConvertMarkdownToText("so   happy\n\ntoday [link](https://example.com/a)")
	if strings.Contains(got, "\n") {
		t.Errorf("ConvertMarkdownToText = %q, want newlines collapsed", got)
	}
	if !strings.Contains(got, "so happy") {
		t.Errorf("ConvertMarkdownToText = %q, want inner whitespace normalized", got)
	}
	if strings.Contains(got, "example.com") {
		t.Errorf("ConvertMarkdownToText = %q, want URLs removed", got)
	}
}
