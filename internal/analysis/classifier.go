package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/sojin-dev/maumlog/internal/emotion"
	"github.com/sojin-dev/maumlog/internal/models"
)

// Keyword hit weight and the VADER neutrality band of the offline tiers.
const (
	keywordIncrement = 40
	vaderThreshold   = 0.20
)

// SentimentAPI is the remote binary-sentiment model. *clients.HuggingFaceClient
// implements it; tests stub it.
type SentimentAPI interface {
	AnalyzeSentiment(ctx context.Context, text string) ([]models.SentimentScore, error)
}

// Classifier turns free text into a five-category emotion distribution.
// The remote model is tried first when configured; any upstream failure
// drops to the deterministic offline tiers and is never surfaced to the
// caller.
type Classifier struct {
	remote SentimentAPI // nil when no credential is configured
	cache  *ResultCache // nil when caching is disabled
	vader  *govader.SentimentIntensityAnalyzer
}

func NewClassifier(remote SentimentAPI, cache *ResultCache) *Classifier {
	return &Classifier{
		remote: remote,
		cache:  cache,
		vader:  govader.NewSentimentIntensityAnalyzer(),
	}
}

// Classify scores text. It fails only on empty input.
func (c *Classifier) Classify(ctx context.Context, text string) (models.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.ClassificationResult{}, fmt.Errorf("empty text")
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(ctx, text); ok {
			return cached, nil
		}
	}

	var dist emotion.Distribution
	usedFallback := true

	if c.remote != nil {
		if remoteDist, err := c.classifyRemote(ctx, text); err != nil {
			slog.Warn("[Classifier] Remote classification failed, using keyword fallback",
				slog.String("error", err.Error()))
		} else {
			dist = remoteDist
			usedFallback = false
		}
	}

	if usedFallback {
		dist = c.classifyOffline(text)
	}

	result := models.ClassificationResult{
		PrimaryEmotion: dist.Primary(),
		Intensity:      dist.Max(),
		Distribution:   dist,
		UsedFallback:   usedFallback,
	}

	if c.cache != nil {
		c.cache.Put(ctx, text, result)
	}
	return result, nil
}

// classifyRemote maps the binary POSITIVE/NEGATIVE scores onto the five
// categories and normalizes to percentages.
func (c *Classifier) classifyRemote(ctx context.Context, text string) (emotion.Distribution, error) {
	scores, err := c.remote.AnalyzeSentiment(ctx, Excerpt(text))
	if err != nil {
		return emotion.Distribution{}, err
	}

	var dist emotion.Distribution
	for _, score := range scores {
		switch score.Label {
		case "POSITIVE":
			dist.Add(emotion.Happiness, round(score.Score*100))
			dist.Add(emotion.Calm, round(score.Score*80))
		case "NEGATIVE":
			dist.Add(emotion.Sadness, round(score.Score*100))
			dist.Add(emotion.Anxiety, round(score.Score*60))
			dist.Add(emotion.Anger, round(score.Score*40))
		}
	}

	total := dist.Total()
	if total == 0 {
		total = 100
	}
	return normalize(dist, total), nil
}

// classifyOffline runs the keyword heuristic; when no keyword matches, a
// VADER pass over the markdown-stripped text catches non-Korean entries
// before defaulting to calm.
func (c *Classifier) classifyOffline(text string) emotion.Distribution {
	var dist emotion.Distribution
	lower := strings.ToLower(text)

	for _, cat := range emotion.Categories {
		for _, kw := range emotion.Lookup(cat).Keywords {
			if strings.Contains(lower, kw) {
				dist.Add(cat, keywordIncrement)
				break
			}
		}
	}

	if dist.Total() == 0 {
		dist = c.classifyLexicon(text)
	}

	total := dist.Total()
	if total == 0 {
		return emotion.Distribution{Calm: 100}
	}
	return normalize(dist, total)
}

// classifyLexicon mirrors the remote label mapping using the local VADER
// compound score. The neutral band yields an empty distribution so the
// caller falls through to calm.
func (c *Classifier) classifyLexicon(text string) emotion.Distribution {
	var dist emotion.Distribution
	compound := c.vader.PolarityScores(ConvertMarkdownToText(text)).Compound

	switch {
	case compound >= vaderThreshold:
		dist.Add(emotion.Happiness, round(compound*100))
		dist.Add(emotion.Calm, round(compound*80))
	case compound <= -vaderThreshold:
		dist.Add(emotion.Sadness, round(-compound*100))
		dist.Add(emotion.Anxiety, round(-compound*60))
		dist.Add(emotion.Anger, round(-compound*40))
	}
	return dist
}

// normalize scales every category to a share of total. Each value rounds
// independently, so the result may sum to 99-101.
func normalize(dist emotion.Distribution, total int) emotion.Distribution {
	var out emotion.Distribution
	for _, cat := range emotion.Categories {
		out.Add(cat, round(float64(dist.Get(cat))/float64(total)*100))
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
