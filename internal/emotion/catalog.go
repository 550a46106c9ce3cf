package emotion

// Bundle is the static per-category configuration: the coaching persona,
// its fixed follow-ups, the advice strings, and the keyword patterns the
// offline classifier matches against. One table serves every endpoint so
// the copies cannot drift apart.
type Bundle struct {
	// SystemPrompt frames the remote chat model as a counselor for this
	// category.
	SystemPrompt string
	// Questions are the three follow-ups returned with every coach reply.
	Questions [3]string
	// Suggestions are the three concrete actions returned with every
	// coach reply.
	Suggestions [3]string
	// Insight is the one-sentence observation returned with every coach
	// reply.
	Insight string
	// AnalysisAdvice accompanies an emotion-analysis result.
	AnalysisAdvice string
	// CannedAdvice is the fixed reply of the advice endpoint when no
	// model is reachable (or demo mode is on).
	CannedAdvice string
	// Keywords are the substrings the offline heuristic scores against.
	Keywords []string
}

const (
	// DefaultAnalysisAdvice is returned when the analyzed emotion is not
	// in the catalog.
	DefaultAnalysisAdvice = "당신의 감정을 소중히 여기고, 스스로를 잘 돌봐주세요."
	// DefaultCannedAdvice is the advice endpoint's reply for an unknown
	// emotion label.
	DefaultCannedAdvice = "당신의 감정을 소중히 여기고, 현재의 순간을 받아들여주세요. 모든 감정은 의미가 있습니다. 💝"
	// DefaultInsight is used when a coach request names no known emotion.
	DefaultInsight = "모든 감정은 우리에게 소중한 정보를 전달해줍니다. 자신의 감정을 이해하고 받아들이는 것이 성장의 첫걸음이에요."
)

var bundles = map[Category]Bundle{
	Happiness: {
		SystemPrompt: "당신은 따뜻하고 공감적인 심리 상담사입니다. 사용자의 행복한 감정을 더욱 강화하고 지속시킬 수 있도록 도와주세요. 긍정적인 에너지를 확장하는 방법을 제안하고, 행복한 순간을 더 깊이 탐구해보세요.",
		Questions: [3]string{
			"이 행복한 기분을 만든 특별한 순간이 무엇인가요?",
			"이런 기분을 더 자주 느끼려면 어떻게 할 수 있을까요?",
			"오늘의 긍정적인 에너지를 어떻게 내일로 이어갈까요?",
		},
		Suggestions: [3]string{
			"좋은 기분을 일기로 더 자세히 기록해보세요",
			"친구나 가족과 이 기쁨을 나눠보세요",
			"오늘의 긍정적인 순간들을 사진으로 남겨보세요",
		},
		Insight:        "행복한 순간들을 의식적으로 기록하면 더 오래 기억할 수 있어요. 긍정적인 감정도 연습을 통해 강화될 수 있습니다.",
		AnalysisAdvice: "오늘 하루가 정말 좋으셨군요! 이런 행복한 감정을 소중히 간직하시고, 주변 사람들과도 나누어보세요. 행복한 기억들이 쌓여가면서 더욱 밝은 내일이 될 거예요. 💝",
		CannedAdvice:   "당신의 행복한 마음이 정말 멋집니다! 이 긍정적인 에너지를 유지하면서 주변 사람들과도 나누어보세요. 좋은 일들이 계속 일어날 거라고 믿으세요. 😊",
		Keywords:       []string{"기쁨", "행복", "좋", "즐거", "신나", "신기", "멋", "멋있", "훌륭", "최고"},
	},
	Sadness: {
		SystemPrompt: "당신은 공감적이고 따뜻한 심리 상담사입니다. 사용자의 슬픔을 있는 그대로 받아들이며, 판단하지 않고 들어주세요. 희망과 회복의 길을 부드럽게 제시하되, 현재 감정을 충분히 인정하고 지지해주세요.",
		Questions: [3]string{
			"지금 가장 힘든 부분이 무엇인지 더 이야기해주시겠어요?",
			"이런 상황에서 당신에게 가장 도움이 되는 것은 무엇인가요?",
			"과거에 비슷한 어려움을 어떻게 극복하셨나요?",
		},
		Suggestions: [3]string{
			"따뜻한 차 한 잔과 함께 휴식을 취해보세요",
			"좋아하는 음악을 들으며 감정을 정리해보세요",
			"신뢰하는 사람과 이야기를 나눠보세요",
		},
		Insight:        "슬픔은 우리에게 무언가 중요한 것을 잃었거나 변화가 필요하다는 신호일 수 있어요. 이 감정을 통해 자신을 더 깊이 이해할 수 있습니다.",
		AnalysisAdvice: "슬픈 마음이 드시는군요. 지금의 감정을 있는 그대로 받아들이는 것도 중요해요. 시간이 지나면서 이 감정도 조금씩 가벼워질 것입니다. 혼자가 아니라는 것을 기억해주세요. 💙",
		CannedAdvice:   "지금의 슬픈 감정을 있는 그대로 받아들여주세요. 시간은 최고의 치료자입니다. 혼자가 아니라는 걸 잊지 마시고, 필요하면 주변 사람들에게 도움을 청하는 것도 좋아요. 💙",
		Keywords:       []string{"슬픔", "슬프", "우울", "외로", "아쉬", "힘들", "지침", "피곤", "우", "울었"},
	},
	Anger: {
		SystemPrompt: "당신은 감정 조절 전문가입니다. 사용자의 분노를 이해하고 받아들이며, 이 감정이 전달하는 메시지를 함께 탐구해보세요. 건설적인 표현 방법과 근본 원인 해결을 위한 실용적 조언을 제공하세요.",
		Questions: [3]string{
			"이 상황에서 가장 화가 나는 부분이 정확히 무엇인가요?",
			"이 감정 뒤에 숨어있는 진짜 필요는 무엇일까요?",
			"상황을 개선하기 위해 할 수 있는 첫 번째 단계는 무엇일까요?",
		},
		Suggestions: [3]string{
			"10까지 천천히 세어보세요",
			"산책이나 가벼운 운동을 해보세요",
			"상황을 글로 정리해서 객관적으로 바라보세요",
		},
		Insight:        "분노는 종종 우리의 가치나 경계선이 침범당했을 때 나타나요. 이 감정이 알려주는 메시지에 귀 기울여보세요.",
		AnalysisAdvice: "화가 나신 상황이 있으셨나봐요. 그런 감정을 느끼시는 것은 자연스러운 일입니다. 한 번 깊게 숨을 쉬고, 그 감정의 근원이 무엇인지 생각해보세요. 이해하고 받아들이는 것부터 시작입니다. 💪",
		CannedAdvice:   "화가 나신 상황을 차분히 정리해보세요. 감정을 느끼는 것도 중요하지만, 그 감정을 어떻게 표현할지 생각해보는 것도 중요합니다. 깊게 숨을 쉬고 상황을 다시 바라봐보세요. 💪",
		Keywords:       []string{"화", "화나", "짜증", "분노", "열받", "황당", "답답", "화풀이", "열", "빡"},
	},
	Anxiety: {
		SystemPrompt: "당신은 불안 완화 전문가입니다. 사용자의 불안을 이해하고, 현재 순간에 집중할 수 있도록 도우세요. 실용적이고 즉시 적용 가능한 대처 전략을 제공하며, 작은 단계로 나누어 접근하게 해주세요.",
		Questions: [3]string{
			"지금 가장 걱정되는 것이 구체적으로 무엇인가요?",
			"이 걱정 중에서 당신이 통제할 수 있는 부분은 무엇인가요?",
			"마음이 조금 더 편해질 수 있는 작은 행동이 있을까요?",
		},
		Suggestions: [3]string{
			"4-7-8 호흡법을 시도해보세요 (4초 흡입, 7초 멈춤, 8초 내쉼)",
			"지금 할 수 있는 작은 일 하나부터 시작해보세요",
			"걱정 목록을 적고 통제 가능한 것들을 구분해보세요",
		},
		Insight:        "불안은 우리가 미래를 준비하려는 자연스러운 반응이에요. 하지만 현재 순간에 집중하는 연습이 도움이 될 수 있습니다.",
		AnalysisAdvice: "불안한 마음이 있으신 것 같네요. 걱정되시는 상황들이 있겠지만, 지금 이 순간에 할 수 있는 작은 것들부터 시작해보세요. 한 걸음씩 나아가다 보면 길이 보일 거예요. 🌟",
		CannedAdvice:   "불안한 마음이 든다면, 지금 이 순간에 할 수 있는 작은 행동들을 찾아보세요. 계획을 세우고 한 걸음씩 나아가다 보면 불안감이 줄어들 것입니다. 당신은 충분히 할 수 있어요! 🌟",
		Keywords:       []string{"불안", "걱정", "두렵", "무서", "긴장", "스트레스", "불편", "근심"},
	},
	Calm: {
		SystemPrompt: "당신은 마음챙김과 자기 돌봄 전문가입니다. 사용자의 평온한 상태를 인정하고 격려하며, 이런 긍정적인 상태를 더 깊이 탐구하고 지속할 수 있는 방법을 함께 찾아보세요.",
		Questions: [3]string{
			"이 평온한 상태를 만든 것이 무엇인가요?",
			"지금 이 순간에서 가장 감사한 것은 무엇인가요?",
			"이 기분을 지속하기 위해 어떤 습관을 만들고 싶나요?",
		},
		Suggestions: [3]string{
			"현재 순간의 감각들을 의식적으로 느껴보세요",
			"감사한 것들을 3가지 떠올려보세요",
			"이 평온함을 유지하는 나만의 방법을 찾아보세요",
		},
		Insight:        "평온한 상태는 마음의 균형이 잘 잡혀있다는 신호예요. 이런 순간들을 더 자주 만들어갈 수 있는 방법을 탐구해보세요.",
		AnalysisAdvice: "마음이 차분하고 편안하신 것 같습니다. 이런 평온한 상태를 유지하려고 노력해보세요. 자신을 돌보고, 좋아하는 것들을 하면서 이 기분을 지켜내시길 바랍니다. 😌",
		CannedAdvice:   "마음의 평온함을 유지하려고 노력해주세요. 이 순간의 감정을 소중히 간직하고, 자신을 돌보는 시간을 가져보세요. 평온한 마음은 좋은 결정을 내리는 데 도움이 됩니다. 😌",
		Keywords:       []string{"평온", "차분", "평화", "안정", "편안", "좋다", "여유", "고요", "침착"},
	},
}

// Lookup returns the bundle for c. Unknown categories get the calm bundle,
// matching how the coach treats requests without a recognized emotion.
func Lookup(c Category) Bundle {
	if b, ok := bundles[c]; ok {
		return b
	}
	return bundles[Calm]
}

// LookupDisplayName resolves a Korean label to its bundle, falling back to
// calm for unknown labels.
func LookupDisplayName(name string) Bundle {
	if c, ok := FromDisplayName(name); ok {
		return bundles[c]
	}
	return bundles[Calm]
}
