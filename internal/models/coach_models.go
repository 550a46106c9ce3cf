package models

// CoachRequest is the emotion-coach endpoint's body. Emotion carries the
// Korean display label (행복, 슬픔, ...) and may be empty.
type CoachRequest struct {
	Message             string `json:"message"`
	Emotion             string `json:"emotion,omitempty"`
	UserHistory         string `json:"userHistory,omitempty"`
	ConversationContext string `json:"conversationContext,omitempty"`
}

// CoachReply is one complete coaching turn.
type CoachReply struct {
	Message           string    `json:"response"`
	FollowUpQuestions [3]string `json:"followUpQuestions"`
	Suggestions       [3]string `json:"suggestions"`
	Insight           string    `json:"emotionalInsight"`
}

// AdviceRequest is the generate-advice endpoint's body.
type AdviceRequest struct {
	Emotion string `json:"emotion"`
	Content string `json:"content"`
}
