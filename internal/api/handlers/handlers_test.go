package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaniego/hive-scrutineer/internal/analysis"
)

type stubDetector struct {
	confidences map[string]float64
}

func (d *stubDetector) Confidences(_ context.Context, _ string) (map[string]float64, error) {
	return d.confidences, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	detector := &stubDetector{confidences: map[string]float64{"en": 1}}
	engine := analysis.NewEngine(nil, detector, analysis.DefaultParams())
	analyzeHandler := NewAnalyzeHandler(engine, nil, "")
	keywordsHandler := NewKeywordsHandler()

	r := gin.New()
	r.POST("/api/v1/analyze", analyzeHandler.AnalyzePost)
	r.POST("/api/v1/keywords", keywordsHandler.Keywords)
	r.POST("/api/v1/bigrams", keywordsHandler.Bigrams)
	r.GET("/health", Health)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAnalyzePost(t *testing.T) {
	r := testRouter()

	// 800 prose words plus two non-adjacent images clears the default
	// minimum score (aggregate 5.45/6).
	prose := strings.TrimSpace(strings.Repeat("word ", 400))
	body := prose + "\n![a](https://x/a.png)\n" + prose + "\n![b](https://x/b.png)"
	payload, err := json.Marshal(map[string]interface{}{
		"author":   "alice",
		"permlink": "garden-update",
		"title":    "a solid weekly garden update",
		"body":     body,
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze", string(payload))
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.True(t, resp.MeetsMinimum)
	assert.NotEmpty(t, resp.URL)
	assert.NotEmpty(t, resp.Excerpt)
}

func TestAnalyzePostScoredOut(t *testing.T) {
	r := testRouter()

	// Missing title scores out with a null result, not an error.
	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze",
		`{"author":"alice","permlink":"garden-update","body":"short"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result)
	assert.False(t, resp.MeetsMinimum)
	assert.Empty(t, resp.URL)
}

func TestAnalyzePostMissingFields(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze", `{"title":"no identity"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeywordsEndpoint(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/keywords",
		`{"text":"hive power hive power hive power hive power","min_occurrence":4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Keywords map[string]int `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]int{"hive": 4, "power": 4}, resp.Keywords)
}

func TestKeywordsEndpointMissingText(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/keywords", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBigramsEndpoint(t *testing.T) {
	r := testRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/bigrams",
		`{"text":"hive power hive power hive power hive power","min_occurrence":2,"top":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Bigrams map[string]int `json:"bigrams"`
		Top     []string       `json:"top"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Bigrams["hive power"])
	assert.Equal(t, []string{"hive power"}, resp.Top)
}
