package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sojin-dev/maumlog/internal/models"
)

const HF_SENTIMENT_ENDPOINT = "https://api-inference.huggingface.co/models/distilbert-base-uncased-finetuned-sst-2-english"

type HuggingFaceClient struct {
	Client   *http.Client
	token    string
	endpoint string
}

// NewHuggingFaceClient builds a client for the hosted binary-sentiment
// model. Production gets the tight timeout; everywhere else the model may
// still be cold-starting, so we wait longer.
func NewHuggingFaceClient(token, env string) *HuggingFaceClient {
	var timeout time.Duration
	if env == "production" {
		timeout = 10 * time.Second
	} else {
		timeout = 60 * time.Second
	}

	slog.Info("[HuggingFaceClient] Initializing client",
		slog.Duration("timeout", timeout),
		slog.String("env", env))

	return &HuggingFaceClient{
		Client:   &http.Client{Timeout: timeout},
		token:    token,
		endpoint: HF_SENTIMENT_ENDPOINT,
	}
}

// AnalyzeSentiment sends one excerpt to the model and returns its
// label/score pairs.
func (h *HuggingFaceClient) AnalyzeSentiment(ctx context.Context, text string) ([]models.SentimentScore, error) {
	var result models.SentimentResponse
	slog.Info("[HuggingFaceClient] Requesting sentiment analysis")
	start := time.Now()

	if err := h.postJSON(ctx, h.endpoint, models.SentimentRequest{Inputs: text}, &result); err != nil {
		slog.Error("[HuggingFaceClient] Sentiment analysis request failed",
			slog.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	slog.Info("[HuggingFaceClient] Sentiment analysis request successful",
		slog.Duration("elapsed", time.Since(start)))

	if len(result) == 0 {
		return nil, fmt.Errorf("empty sentiment response")
	}
	return result[0], nil
}

func (h *HuggingFaceClient) DoWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		resp, err = h.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}

		slog.Warn("[HuggingFaceClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return resp, err
}

func (h *HuggingFaceClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.DoWithRetry(req)
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed request after retries",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sentiment endpoint returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Error("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody))
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return fmt.Sprintf("status code %d", resp.StatusCode)
	}
	return "unknown error"
}
