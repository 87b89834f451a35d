package webview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReportJSON = `{
  "finalUrl": "https://example.com/",
  "audits": {
    "first-contentful-paint": {
      "id": "first-contentful-paint",
      "title": "First Contentful Paint",
      "score": 0.95,
      "scoreDisplayMode": "numeric",
      "displayValue": "1.2 s"
    },
    "render-blocking-resources": {
      "id": "render-blocking-resources",
      "title": "Eliminate render-blocking resources",
      "score": 0.3,
      "scoreDisplayMode": "numeric",
      "details": {"type": "opportunity", "overallSavingsMs": 450}
    }
  },
  "categories": {
    "performance": {
      "id": "performance",
      "title": "Performance",
      "score": 0.82,
      "auditRefs": [
        {"id": "first-contentful-paint", "weight": 10, "group": "metrics"},
        {"id": "render-blocking-resources", "weight": 0, "group": "load-opportunities"}
      ]
    }
  },
  "categoryGroups": {
    "metrics": {"title": "Metrics"},
    "load-opportunities": {"title": "Opportunities"}
  }
}`

func newTestAPI() *WebAPI {
	logger := zerolog.Nop()
	return NewWebAPI(logger, Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Render:          &contract.Config{Category: contract.DefaultCategory},
	})
}

func TestRenderCategoryEndpoint(t *testing.T) {
	api := newTestAPI()

	tests := []struct {
		name       string
		target     string
		body       string
		wantStatus int
	}{
		{
			name:       "default category",
			target:     "/api/v1/render",
			body:       testReportJSON,
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit category",
			target:     "/api/v1/render?category=performance",
			body:       testReportJSON,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown category",
			target:     "/api/v1/render?category=accessibility",
			body:       testReportJSON,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed body",
			target:     "/api/v1/render",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty report",
			target:     "/api/v1/render",
			body:       "{}",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			api.Router().ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRenderCategoryResponseBody(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(testReportJSON))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var section schema.CategorySection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &section))
	assert.Equal(t, "performance", section.CategoryID)
	assert.Equal(t, "https://example.com/", section.URL)
	require.NotNil(t, section.Section(schema.MetricsClump))
	require.NotNil(t, section.Section(schema.OpportunitiesClump))
	assert.Equal(t, "render-blocking-resources", section.Section(schema.OpportunitiesClump).Opportunities[0].AuditID)
}

func TestHealthzEndpoint(t *testing.T) {
	api := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
