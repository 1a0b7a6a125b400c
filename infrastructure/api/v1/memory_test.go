package v1

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmkit/tmkit"
	"github.com/tmkit/tmkit/domain/tm"
	"github.com/tmkit/tmkit/infrastructure/api/v1/dto"
)

func newTestRouter(t *testing.T) (*tmkit.Client, http.Handler) {
	t.Helper()
	client, err := tmkit.New(tmkit.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, NewMemoryRouter(client, client.Logger()).Routes()
}

func doJSON(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSuggest_ReturnsRankedMatches(t *testing.T) {
	client, handler := newTestRouter(t)
	ctx := context.Background()
	require.NoError(t, client.Memory.AddUnit(ctx, tm.NewRecord("Hello world", "Bonjour monde", ""), "en", "fr"))

	rec := doJSON(t, handler, http.MethodGet, "/en/fr/unit/"+url.PathEscape("Hello world"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Equal(t, "Hello world", response.Matches[0].Source)
	assert.Equal(t, "Bonjour monde", response.Matches[0].Target)
	assert.Equal(t, 100, response.Matches[0].Quality)
}

func TestSuggest_NoMatches(t *testing.T) {
	_, handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/en/fr/unit/"+url.PathEscape("Hello world"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Matches)
}

func TestSuggest_BadLanguage(t *testing.T) {
	_, handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/%20/fr/unit/hello", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddUnit_ThenSuggest(t *testing.T) {
	_, handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPut, "/en/fr/unit/"+url.PathEscape("Good morning"),
		`{"target": "Bonjour", "context": "greeting"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/en/fr/unit/"+url.PathEscape("Good morning"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.SuggestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Matches, 1)
	assert.Equal(t, "Bonjour", response.Matches[0].Target)
	assert.Equal(t, "greeting", response.Matches[0].Context)
}

func TestAddUnit_InvalidBody(t *testing.T) {
	_, handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPut, "/en/fr/unit/hello", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadStore(t *testing.T) {
	client, handler := newTestRouter(t)

	body := `[
		{"source": "Hello world", "target": "Bonjour monde"},
		{"source": "Good morning", "target": "Bonjour", "context": "greeting"},
		{"source": "Untranslated entry", "target": ""}
	]`
	rec := doJSON(t, handler, http.MethodPost, "/en/fr/store", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.StoreUploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)

	count, err := client.Memory.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStats(t *testing.T) {
	client, handler := newTestRouter(t)
	ctx := context.Background()
	require.NoError(t, client.Memory.AddUnit(ctx, tm.NewRecord("Hello world", "Bonjour monde", ""), "en", "fr"))

	rec := doJSON(t, handler, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response dto.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(1), response.Records)
}
