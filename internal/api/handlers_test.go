package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sojin-dev/maumlog/internal/analysis"
	"github.com/sojin-dev/maumlog/internal/coach"
	"github.com/sojin-dev/maumlog/internal/emotion"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter builds the router with every remote backend absent, so the
// handlers exercise the offline paths.
func newTestRouter() *gin.Engine {
	h := NewHandlers("test",
		analysis.NewClassifier(nil, nil),
		coach.NewComposer(nil),
		coach.NewAdvisor(nil, false),
		nil, nil)
	return NewRouter(h)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not a JSON object: %v\nbody: %s", err, w.Body.String())
		}
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "ok" || body["message"] != "Server is running" || body["environment"] != "test" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	for _, path := range []string{"/api/analyze-emotion", "/api/emotion-coach", "/api/entries"} {
		// No body, no auth header: preflight must pass before any
		// validation runs.
		w, _ := doJSON(t, r, http.MethodOptions, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("OPTIONS %s: status = %d, want 200", path, w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("OPTIONS %s: Allow-Origin = %q, want *", path, got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "X-User-ID") {
			t.Errorf("OPTIONS %s: Allow-Headers = %q, want X-User-ID included", path, got)
		}
	}
}

func TestAnalyzeEmotionValidation(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"empty object", "{}"},
		{"empty content", `{"content":""}`},
		{"malformed json", `{"content":`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, body := doJSON(t, r, http.MethodPost, "/api/analyze-emotion", tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if body["error"] != errContentRequired {
				t.Errorf("error = %v, want %q", body["error"], errContentRequired)
			}
		})
	}
}

func TestAnalyzeEmotionOfflinePath(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/analyze-emotion",
		`{"content":"정말 행복하고 좋은 하루였다"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %v", w.Code, body)
	}

	if body["primary_emotion"] != "행복" {
		t.Errorf("primary_emotion = %v, want 행복", body["primary_emotion"])
	}
	if body["emotion_intensity"] != float64(100) {
		t.Errorf("emotion_intensity = %v, want 100", body["emotion_intensity"])
	}

	summary, _ := body["summary"].(string)
	if !strings.Contains(summary, "당신의 감정 상태는 주로 행복입니다.") ||
		!strings.Contains(summary, "(로컬 분석)") {
		t.Errorf("summary = %q, want the local-analysis wording", summary)
	}
	if body["advice"] != emotion.Lookup(emotion.Happiness).AnalysisAdvice {
		t.Errorf("advice = %v, want the happiness analysis advice", body["advice"])
	}

	emotions, ok := body["emotions"].(map[string]any)
	if !ok {
		t.Fatalf("emotions is not an object: %v", body["emotions"])
	}
	if emotions["happiness"] != float64(100) {
		t.Errorf("emotions.happiness = %v, want 100", emotions["happiness"])
	}
}

func TestGenerateAdvice(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{"{}", `{"emotion":"행복"}`, `{"content":"일기"}`} {
			w, decoded := doJSON(t, r, http.MethodPost, "/api/generate-advice", body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %s: status = %d, want 400", body, w.Code)
			}
			if decoded["error"] != errAdviceRequired {
				t.Errorf("body %s: error = %v, want %q", body, decoded["error"], errAdviceRequired)
			}
		}
	})

	t.Run("canned advice without a model", func(t *testing.T) {
		t.Parallel()
		w, body := doJSON(t, r, http.MethodPost, "/api/generate-advice",
			`{"emotion":"슬픔","content":"힘든 하루였다"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if body["advice"] != emotion.Lookup(emotion.Sadness).CannedAdvice {
			t.Errorf("advice = %v, want the canned sadness advice", body["advice"])
		}
	})
}

func TestEmotionCoach(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	t.Run("missing message", func(t *testing.T) {
		t.Parallel()
		w, body := doJSON(t, r, http.MethodPost, "/api/emotion-coach", `{"emotion":"행복"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if body["error"] != errMessageRequired {
			t.Errorf("error = %v, want %q", body["error"], errMessageRequired)
		}
	})

	t.Run("template reply", func(t *testing.T) {
		t.Parallel()
		w, body := doJSON(t, r, http.MethodPost, "/api/emotion-coach",
			`{"message":"요즘 계속 불안해요","emotion":"불안"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		if reply, _ := body["response"].(string); reply == "" {
			t.Error("response is empty")
		}
		questions, ok := body["followUpQuestions"].([]any)
		if !ok || len(questions) != 3 {
			t.Errorf("followUpQuestions = %v, want 3 entries", body["followUpQuestions"])
		}
		suggestions, ok := body["suggestions"].([]any)
		if !ok || len(suggestions) != 3 {
			t.Errorf("suggestions = %v, want 3 entries", body["suggestions"])
		}
		if body["emotionalInsight"] != emotion.Lookup(emotion.Anxiety).Insight {
			t.Errorf("emotionalInsight = %v, want the anxiety insight", body["emotionalInsight"])
		}
	})
}

func TestEntryEndpointsRequireUser(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/entries"},
		{http.MethodGet, "/api/entries"},
		{http.MethodGet, "/api/entries/abc"},
		{http.MethodPut, "/api/entries/abc"},
		{http.MethodDelete, "/api/entries/abc"},
		{http.MethodGet, "/api/stats"},
	}

	for _, tt := range tests {
		w, body := doJSON(t, r, tt.method, tt.path, "{}", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", tt.method, tt.path, w.Code)
		}
		if body["error"] != errUserRequired {
			t.Errorf("%s %s: error = %v, want %q", tt.method, tt.path, body["error"], errUserRequired)
		}
	}
}

func TestEntryEndpointsWithoutStore(t *testing.T) {
	t.Parallel()
	r := newTestRouter()

	headers := map[string]string{"X-User-ID": "user-1"}
	w, body := doJSON(t, r, http.MethodGet, "/api/entries", "", headers)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if body["error"] != errStoreMissing {
		t.Errorf("error = %v, want %q", body["error"], errStoreMissing)
	}
}
