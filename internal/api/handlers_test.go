package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edarec/internal/annotator"
	"edarec/internal/errors"
)

const annotateBody = `{
  "analyses": [
    {
      "name": "DESCRIPTIVE",
      "features": [{"name": "city"}],
      "metrics": [
        {"kind": "TOTAL_COUNT", "value": 1000},
        {"kind": "MISSING", "value": 150},
        {"kind": "CARDINALITY", "value": 150}
      ]
    }
  ]
}`

func newTestServer() *Server {
	return NewServer(annotator.New(2, nil), nil)
}

func TestHandleAnnotate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/annotate", strings.NewReader(annotateBody))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var run annotator.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 1, run.RecordCount)
	require.Len(t, run.Recommendations, 2)
	assert.Equal(t, "city has 0.15 missing values", run.Recommendations[0].Message)
	assert.Equal(t, "city has a high cardinality: 150 distinct values", run.Recommendations[1].Message)
}

func TestHandleAnnotate_BadDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/annotate", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errors.CodeInvalidInput, resp.Code)
}

func TestHandleAnnotate_EmptyDataset(t *testing.T) {
	body := `{
  "analyses": [
    {
      "name": "DESCRIPTIVE",
      "features": [{"name": "age"}],
      "metrics": [{"kind": "MISSING", "value": 10}]
    }
  ]
}`
	req := httptest.NewRequest(http.MethodPost, "/v1/annotate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, errors.CodeEmptyDataset, resp.Code)
}

func TestHandleReport(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/report", strings.NewReader(annotateBody))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<li>city has 0.15 missing values</li>")
}

func TestHandleReport_NoContent(t *testing.T) {
	body := `{
  "analyses": [
    {
      "name": "DESCRIPTIVE",
      "features": [{"name": "age"}],
      "metrics": [
        {"kind": "TOTAL_COUNT", "value": 1000},
        {"kind": "MISSING", "value": 50}
      ]
    }
  ]
}`
	req := httptest.NewRequest(http.MethodPost, "/v1/report", strings.NewReader(body))
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
