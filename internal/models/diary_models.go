package models

import "time"

// DiaryEntry is the persisted journal record. Field names follow the
// table's snake_case attributes.
type DiaryEntry struct {
	ID           string    `json:"id" dynamodbav:"id"`
	UserID       string    `json:"user_id" dynamodbav:"user_id"`
	Title        string    `json:"title" dynamodbav:"title"`
	Content      string    `json:"content" dynamodbav:"content"`
	Emotion      string    `json:"emotion" dynamodbav:"emotion"`
	EmotionScore int       `json:"emotion_score" dynamodbav:"emotion_score"`
	AIAdvice     string    `json:"ai_advice" dynamodbav:"ai_advice"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at,unixtime"`
}

// EntryRequest is the create/update body for diary entries. When Analyze
// is set on create, the server classifies the content and stores the
// result with the entry.
type EntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Analyze bool   `json:"analyze,omitempty"`
}

// EmotionStats aggregates a user's entries for the stats endpoint.
type EmotionStats struct {
	TotalEntries  int            `json:"total_entries"`
	EmotionCounts map[string]int `json:"emotion_counts"`
	AverageScore  float64        `json:"average_score"`
}

// EntryAnalyzedEvent is published to the entries topic after an entry is
// stored with a fresh classification.
type EntryAnalyzedEvent struct {
	EntryID      string    `json:"entry_id"`
	UserID       string    `json:"user_id"`
	Emotion      string    `json:"emotion"`
	EmotionScore int       `json:"emotion_score"`
	UsedFallback bool      `json:"used_fallback"`
	CreatedAt    time.Time `json:"created_at"`
}
