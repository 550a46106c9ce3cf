package coach

import (
	"fmt"
	"strings"

	"github.com/sojin-dev/maumlog/internal/emotion"
)

// messagePrefixLen is how much of the user's message is quoted back in a
// templated reply.
const messagePrefixLen = 20

var (
	positiveWords = []string{"좋다", "행복", "기쁘다", "즐겁다", "만족", "감사", "웃음", "사랑"}
	negativeWords = []string{"힘들다", "슬프다", "우울", "걱정", "불안", "화", "스트레스", "피곤"}
)

func messagePrefix(message string) string {
	runes := []rune(message)
	if len(runes) > messagePrefixLen {
		runes = runes[:messagePrefixLen]
	}
	return string(runes)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// phrase returns s only when cond holds, for the optional acknowledgement
// slots inside the templates.
func phrase(cond bool, s string) string {
	if cond {
		return s
	}
	return ""
}

// fallbackReplies is the per-emotion template pool used when no chat model
// is reachable or its reply was unusable. The first template of each pool
// quotes a truncated prefix of the user's message.
func fallbackReplies(cat emotion.Category, message string) []string {
	prefix := messagePrefix(message)
	lower := strings.ToLower(message)
	hasPositive := containsAny(lower, positiveWords)
	hasNegative := containsAny(lower, negativeWords)

	switch cat {
	case emotion.Happiness:
		return []string{
			fmt.Sprintf(`"%s..."라는 말씀을 들으니 정말 기쁘네요! 😊 이런 행복한 순간들이 더욱 소중하게 느껴집니다. %s이 기분을 더 오래 간직할 수 있는 방법을 함께 생각해볼까요?`,
				prefix, phrase(hasPositive, "긍정적인 에너지가 전해져요! ")),
			fmt.Sprintf(`행복한 기분이 느껴져요! %s이런 순간들을 더 자주 만들어가기 위해 무엇이 가장 도움이 될까요?`,
				phrase(hasPositive, "긍정적인 표현들에서 진정한 기쁨이 느껴져요. ")),
			`정말 밝은 에너지가 전해져요! 오늘의 이런 특별한 기분을 주변 사람들과도 나누시면 더욱 커질 거예요. 어떤 것이 이런 행복을 가져다 주었나요?`,
		}
	case emotion.Sadness:
		return []string{
			fmt.Sprintf(`"%s..."라는 말씀에서 마음이 무거우신 게 느껴져요. %s이런 감정을 느끼는 것도 자연스럽고 괜찮은 일이에요. 💙 지금 이 순간 가장 필요한 것이 무엇일까요?`,
				prefix, phrase(hasNegative, "힘든 감정들을 표현해주셔서 고맙습니다. ")),
			fmt.Sprintf(`힘든 시간을 보내고 계시는군요. %s이런 감정들도 우리 삶의 일부이고, 시간이 지나면서 조금씩 나아질 거예요. 혼자가 아니라는 걸 기억해주세요.`,
				phrase(hasNegative, "어려운 감정을 솔직하게 나누어주셔서 감사해요. ")),
			`지금 마음이 아프신 것 같아요. 슬픈 마음이 드실 때는 그 감정을 있는 그대로 받아들이는 것이 중요해요. 무리하지 마시고, 자신에게 조금 더 따뜻하게 대해주세요.`,
		}
	case emotion.Anger:
		return []string{
			fmt.Sprintf(`"%s..."에서 화가 나신 상황이 느껴져요. %s그런 감정을 느끼는 것은 자연스러운 일이에요. 💪 이 감정이 무엇을 말하려고 하는지 함께 생각해볼까요?`,
				prefix, phrase(hasNegative, "분노를 표현해주시는 것 자체가 용기있는 일이에요. ")),
			`분노는 때로 우리에게 중요한 것이 위협받고 있다는 신호일 수 있어요. 깊게 숨을 쉬시고, 이 상황을 다른 관점에서 바라볼 수도 있을 것 같아요. 지금 가장 중요하게 생각하시는 것이 무엇인가요?`,
			`화가 나는 감정 뒤에는 보통 다른 필요나 가치가 숨어있어요. 이 감정이 전달하려는 메시지에 귀 기울여보시면 어떨까요?`,
		}
	case emotion.Anxiety:
		return []string{
			fmt.Sprintf(`"%s..."라는 말씀에서 불안한 마음이 느껴져요. %s지금 이 순간에 집중해보세요. 🌟 불안할 때는 당신이 통제할 수 있는 것들에 관심을 돌려보는 것이 도움이 돼요.`,
				prefix, phrase(hasNegative, "걱정을 표현해주셔서 고맙습니다. ")),
			`걱정이 많으신 것 같아요. 하나씩 차근차근 정리해보면 생각보다 해결할 수 있는 것들이 많을 거예요. 지금 당장 할 수 있는 작은 것부터 시작해보는 건 어떨까요?`,
			`불안감이 클 때는 현재 순간으로 돌아오는 것이 중요해요. 깊게 숨을 쉬시고, 주변의 작은 것들에 관심을 기울여보세요. 당신은 충분히 잘하고 있어요.`,
		}
	default:
		return []string{
			fmt.Sprintf(`"%s..."라는 말씀에서 차분한 기운이 느껴져요. 😌 이런 평온한 상태를 소중히 여기시고, 무엇이 이런 기분을 만들어주었는지 기억해두세요.`, prefix),
			fmt.Sprintf(`지금의 안정된 기분이 정말 아름답게 느껴져요. %s이런 순간들이 쌓여서 더 큰 행복이 되는 것 같아요. 현재를 충분히 만끽하세요.`,
				phrase(hasPositive, "긍정적인 에너지가 평온함과 잘 어우러져 있네요. ")),
			`평화로운 마음 상태시군요. 이 평온함 속에서 감사할 수 있는 것들을 떠올려보시면 어떨까요? 작은 것들도 충분히 의미 있어요.`,
		}
	}
}
