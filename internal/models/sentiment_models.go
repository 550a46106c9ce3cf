package models

import "github.com/sojin-dev/maumlog/internal/emotion"

// SentimentRequest is the Hugging Face inference API payload.
type SentimentRequest struct {
	Inputs string `json:"inputs"`
}

// SentimentScore is one label/probability pair from the binary sentiment
// model (labels are POSITIVE or NEGATIVE, scores in [0,1]).
type SentimentScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// SentimentResponse mirrors the inference API shape: one inner score list
// per input sequence.
type SentimentResponse [][]SentimentScore

// ClassificationResult is the outcome of classifying one piece of text.
type ClassificationResult struct {
	PrimaryEmotion emotion.Category     `json:"primary_emotion"`
	Intensity      int                  `json:"emotion_intensity"`
	Distribution   emotion.Distribution `json:"emotions"`
	UsedFallback   bool                 `json:"used_fallback"`
}
