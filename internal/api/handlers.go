package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sojin-dev/maumlog/internal/analysis"
	"github.com/sojin-dev/maumlog/internal/coach"
	"github.com/sojin-dev/maumlog/internal/db"
	"github.com/sojin-dev/maumlog/internal/emotion"
	"github.com/sojin-dev/maumlog/internal/events"
	"github.com/sojin-dev/maumlog/internal/models"
)

// Validation messages match the original service's user-facing strings.
const (
	errContentRequired = "일기 내용이 필요합니다."
	errAdviceRequired  = "감정과 내용이 필요합니다."
	errMessageRequired = "메시지가 필요합니다."
	errEntryRequired   = "제목과 내용이 필요합니다."
	errUserRequired    = "사용자 인증이 필요합니다."
	errEntryNotFound   = "일기를 찾을 수 없습니다."
	errStoreMissing    = "저장소가 설정되지 않았습니다."

	errAnalyzeFailed = "감정 분석 중 오류가 발생했습니다."
	errCoachFailed   = "코칭 응답 생성 중 오류가 발생했습니다."
	errEntryFailed   = "일기 처리 중 오류가 발생했습니다."
)

// Handlers bundles the services behind the HTTP surface. Store and
// publisher are nil when their backends are not configured.
type Handlers struct {
	env        string
	classifier *analysis.Classifier
	composer   *coach.Composer
	advisor    *coach.Advisor
	store      *db.DiaryStore
	publisher  *events.Publisher
}

func NewHandlers(env string, classifier *analysis.Classifier, composer *coach.Composer, advisor *coach.Advisor, store *db.DiaryStore, publisher *events.Publisher) *Handlers {
	return &Handlers{
		env:        env,
		classifier: classifier,
		composer:   composer,
		advisor:    advisor,
		store:      store,
		publisher:  publisher,
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"message":     "Server is running",
		"environment": h.env,
	})
}

func (h *Handlers) AnalyzeEmotion(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errContentRequired})
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), body.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errAnalyzeFailed,
			"details": err.Error(),
		})
		return
	}

	name := result.PrimaryEmotion.DisplayName()
	mode := " (AI 분석)"
	if result.UsedFallback {
		mode = " (로컬 분석)"
	}

	c.JSON(http.StatusOK, gin.H{
		"primary_emotion":   name,
		"emotion_intensity": result.Intensity,
		"emotions":          result.Distribution,
		"summary":           "당신의 감정 상태는 주로 " + name + "입니다." + mode,
		"advice":            emotion.Lookup(result.PrimaryEmotion).AnalysisAdvice,
	})
}

func (h *Handlers) GenerateAdvice(c *gin.Context) {
	var body models.AdviceRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Emotion == "" || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errAdviceRequired})
		return
	}

	advice := h.advisor.Advise(c.Request.Context(), body.Emotion, body.Content)
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

func (h *Handlers) EmotionCoach(c *gin.Context) {
	var body models.CoachRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMessageRequired})
		return
	}

	reply, err := h.composer.Compose(c.Request.Context(), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errCoachFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// userID pulls the caller identity set by the auth proxy in front of this
// service. Session issuance and validation stay external.
func (h *Handlers) userID(c *gin.Context) (string, bool) {
	uid := c.GetHeader("X-User-ID")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUserRequired})
		return "", false
	}
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errStoreMissing})
		return "", false
	}
	return uid, true
}

func (h *Handlers) CreateEntry(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var body models.EntryRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Title == "" || body.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEntryRequired})
		return
	}

	entry := models.DiaryEntry{
		ID:        uuid.NewString(),
		UserID:    uid,
		Title:     body.Title,
		Content:   body.Content,
		CreatedAt: time.Now().UTC(),
	}

	var usedFallback bool
	if body.Analyze {
		result, err := h.classifier.Classify(c.Request.Context(), body.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   errAnalyzeFailed,
				"details": err.Error(),
			})
			return
		}
		entry.Emotion = result.PrimaryEmotion.DisplayName()
		entry.EmotionScore = result.Intensity
		entry.AIAdvice = emotion.Lookup(result.PrimaryEmotion).AnalysisAdvice
		usedFallback = result.UsedFallback
	}

	if err := h.store.CreateEntry(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return
	}

	if body.Analyze && h.publisher != nil {
		h.publisher.PublishEntryAnalyzed(models.EntryAnalyzedEvent{
			EntryID:      entry.ID,
			UserID:       entry.UserID,
			Emotion:      entry.Emotion,
			EmotionScore: entry.EmotionScore,
			UsedFallback: usedFallback,
			CreatedAt:    entry.CreatedAt,
		})
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handlers) ListEntries(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	entries, err := h.store.ListEntries(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return
	}
	if entries == nil {
		entries = []models.DiaryEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// ownedEntry loads an entry and hides other users' rows behind a 404.
func (h *Handlers) ownedEntry(c *gin.Context, uid string) (models.DiaryEntry, bool) {
	entry, err := h.store.GetEntry(c.Request.Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) || (err == nil && entry.UserID != uid) {
		c.JSON(http.StatusNotFound, gin.H{"error": errEntryNotFound})
		return models.DiaryEntry{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return models.DiaryEntry{}, false
	}
	return entry, true
}

func (h *Handlers) GetEntry(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	entry, ok := h.ownedEntry(c, uid)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *Handlers) UpdateEntry(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	entry, ok := h.ownedEntry(c, uid)
	if !ok {
		return
	}

	var body models.EntryRequest
	if err := c.ShouldBindJSON(&body); err != nil || (body.Title == "" && body.Content == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": errEntryRequired})
		return
	}

	if body.Title != "" {
		entry.Title = body.Title
	}
	if body.Content != "" {
		entry.Content = body.Content
	}

	if body.Analyze {
		result, err := h.classifier.Classify(c.Request.Context(), entry.Content)
		if err == nil {
			entry.Emotion = result.PrimaryEmotion.DisplayName()
			entry.EmotionScore = result.Intensity
			entry.AIAdvice = emotion.Lookup(result.PrimaryEmotion).AnalysisAdvice
		}
	}

	if err := h.store.UpdateEntry(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Handlers) DeleteEntry(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	if _, ok := h.ownedEntry(c, uid); !ok {
		return
	}

	if err := h.store.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handlers) Stats(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	entries, err := h.store.ListEntries(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   errEntryFailed,
			"details": err.Error(),
		})
		return
	}

	stats := models.EmotionStats{
		TotalEntries:  len(entries),
		EmotionCounts: make(map[string]int),
	}
	var scoreTotal int
	var scored int
	for _, entry := range entries {
		if entry.Emotion == "" {
			continue
		}
		stats.EmotionCounts[entry.Emotion]++
		scoreTotal += entry.EmotionScore
		scored++
	}
	if scored > 0 {
		stats.AverageScore = float64(scoreTotal) / float64(scored)
	}

	c.JSON(http.StatusOK, stats)
}
