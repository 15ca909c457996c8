package insights_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"traits-backend/internal/bootstrap"
	"traits-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

type resultBody struct {
	SelfImprovement []insightBody `json:"selfImprovement"`
	Strengths       []insightBody `json:"strengths"`
	GreenFlags      []insightBody `json:"greenFlags"`
	RedFlags        []insightBody `json:"redFlags"`
	Confidence      float64       `json:"confidence"`
	Completeness    int           `json:"completeness"`
}

type insightBody struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Title      string   `json:"title"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

const storedProfilePayload = `{
	"bigFive": {"openness": 80, "conscientiousness": 35, "extraversion": 20, "agreeableness": 55, "neuroticism": 80},
	"attachmentStyle": "anxious"
}`

func TestGetInsightsRequiresStoredProfile(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a stored profile, got %d", resp.Code)
	}
}

func TestGetInsightsForStoredProfile(t *testing.T) {
	router := newTestRouter(t)

	reqPut := httptest.NewRequest(http.MethodPut, "/api/v1/profile", strings.NewReader(storedProfilePayload))
	reqPut.Header.Set("Content-Type", "application/json")
	addGuestHeader(reqPut)
	respPut := httptest.NewRecorder()
	router.ServeHTTP(respPut, reqPut)
	if respPut.Code != http.StatusOK {
		t.Fatalf("profile save failed: %d %s", respPut.Code, respPut.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result resultBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}

	if len(result.SelfImprovement) == 0 || len(result.RedFlags) == 0 {
		t.Fatalf("expected insights for anxious + big five profile")
	}
	if result.SelfImprovement[0].Title != "Managing Heightened Emotional Sensitivity" {
		t.Fatalf("unexpected top self-improvement insight: %q", result.SelfImprovement[0].Title)
	}
	if result.RedFlags[0].Title != "Avoid Avoidant and Inconsistent Partners" {
		t.Fatalf("unexpected top red flag: %q", result.RedFlags[0].Title)
	}
	for _, list := range [][]insightBody{result.SelfImprovement, result.Strengths, result.GreenFlags, result.RedFlags} {
		if len(list) > 3 {
			t.Fatalf("category exceeded three insights")
		}
		for _, ins := range list {
			if ins.ID == "" || ins.Category == "" {
				t.Fatalf("insight missing id or category: %+v", ins)
			}
		}
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", result.Confidence)
	}
	// Two of seven frameworks populated.
	if result.Completeness != 29 {
		t.Fatalf("expected completeness 29, got %d", result.Completeness)
	}
}

func TestPreviewInsightsDoesNotPersist(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/preview", strings.NewReader(storedProfilePayload))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result resultBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if len(result.SelfImprovement) == 0 {
		t.Fatalf("expected preview insights")
	}

	// Nothing was stored: the stored-profile endpoints still 404.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusNotFound {
		t.Fatalf("preview should not persist, got %d", respGet.Code)
	}
}

func TestPreviewInsightsRejectsBadPayload(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/preview", strings.NewReader(`{"mbti":"WXYZ"}`))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCompletenessWithoutProfile(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile/completeness", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var report struct {
		Overall         int            `json:"overall"`
		Frameworks      map[string]int `json:"frameworks"`
		Missing         []string       `json:"missingFrameworks"`
		Recommendations []string       `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Overall != 0 {
		t.Fatalf("expected overall 0, got %d", report.Overall)
	}
	if len(report.Missing) != 7 {
		t.Fatalf("expected all 7 frameworks missing, got %d", len(report.Missing))
	}
	if len(report.Recommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
}
