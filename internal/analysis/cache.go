package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/sojin-dev/maumlog/internal/clients"
	"github.com/sojin-dev/maumlog/internal/models"
)

const (
	cacheKeyPrefix = "maumlog:analysis:"
	cacheTTL       = 24 * time.Hour
)

// ResultCache stores classification results in Valkey keyed by a content
// hash, so re-analyzing an unchanged entry costs no model call.
type ResultCache struct {
	vc *clients.ValkeyClient
}

func NewResultCache(vc *clients.ValkeyClient) *ResultCache {
	return &ResultCache{vc: vc}
}

func cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(hash[:])
}

func (rc *ResultCache) Get(ctx context.Context, text string) (models.ClassificationResult, bool) {
	raw, ok := rc.vc.GetString(ctx, cacheKey(text))
	if !ok {
		return models.ClassificationResult{}, false
	}

	var result models.ClassificationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("[ResultCache] Failed to unmarshal cached result",
			slog.String("error", err.Error()))
		return models.ClassificationResult{}, false
	}

	slog.Info("[ResultCache] Cache hit")
	return result, true
}

func (rc *ResultCache) Put(ctx context.Context, text string, result models.ClassificationResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		slog.Warn("[ResultCache] Failed to marshal result",
			slog.String("error", err.Error()))
		return
	}

	if err := rc.vc.SetString(ctx, cacheKey(text), string(raw), cacheTTL); err != nil {
		slog.Warn("[ResultCache] Failed to store result",
			slog.String("error", err.Error()))
	}
}
