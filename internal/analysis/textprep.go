package analysis

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// maxExcerptSentences bounds how much of a long diary entry is sent to the
// remote model.
const maxExcerptSentences = 5

// Excerpt reduces text to at most its first five sentences, split on the
// terminators . ! ?. Text without any terminator is treated as a single
// sentence. Sentences are trimmed and rejoined with single spaces.
func Excerpt(text string) string {
	var sentences []string
	var b strings.Builder
	inTerminator := false

	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if b.Len() > 0 {
				b.WriteRune(r)
				inTerminator = true
			}
			continue
		}
		if inTerminator {
			sentences = append(sentences, strings.TrimSpace(b.String()))
			b.Reset()
			inTerminator = false
		}
		b.WriteRune(r)
	}
	if inTerminator {
		sentences = append(sentences, strings.TrimSpace(b.String()))
	}

	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}
	if len(sentences) > maxExcerptSentences {
		sentences = sentences[:maxExcerptSentences]
	}
	return strings.Join(sentences, " ")
}

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

// ConvertMarkdownToText renders markdown and collapses the result to plain
// whitespace-normalized text, so formatting never counts as sentiment.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}
