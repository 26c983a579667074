package storyteller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyricboard/lyricboard/pkg/storyteller"
)

func postGenerate(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestStorytellerApi(t *testing.T) {
	t.Run("GET /healthz", func(t *testing.T) {
		router := setupTestStoryteller(t).GetRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/healthz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("GET / serves the page", func(t *testing.T) {
		router := setupTestStoryteller(t).GetRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "<textarea")
		assert.Contains(t, w.Body.String(), "Images per line")
	})

	t.Run("POST /api/generate", func(t *testing.T) {
		router := setupTestStoryteller(t).GetRouter()

		w := postGenerate(t, router, map[string]any{
			"lyrics":         "Line one\nLine two",
			"samplesPerLine": 1,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Images []storyteller.GeneratedImage `json:"images"`
		}
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)

		require.Len(t, response.Images, 2)
		assert.Equal(t, "Line one", response.Images[0].Line)
		assert.Equal(t, "Line two", response.Images[1].Line)
		assert.Equal(t, 0, response.Images[0].Position)
		assert.Equal(t, 1, response.Images[1].Position)
	})

	t.Run("POST /api/generate empty lyrics", func(t *testing.T) {
		calls := 0
		testStoryteller := setupTestStoryteller(t, func(config *storyteller.StorytellerConfig) {
			config.ImageGenerator = &mockImageGenerator{
				generateUrls: func(ctx context.Context, prompt string, count int) ([]string, error) {
					calls++
					return fakeUrls(prompt, count), nil
				},
			}
		})

		w := postGenerate(t, testStoryteller.GetRouter(), map[string]any{"lyrics": "   \n  "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, calls)

		var response map[string]string
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "please enter some lyrics")
	})

	t.Run("POST /api/generate generator failure", func(t *testing.T) {
		testStoryteller := setupTestStoryteller(t, func(config *storyteller.StorytellerConfig) {
			config.ImageGenerator = &mockImageGenerator{
				generateUrls: func(ctx context.Context, prompt string, count int) ([]string, error) {
					return nil, assert.AnError
				},
			}
		})

		w := postGenerate(t, testStoryteller.GetRouter(), map[string]any{"lyrics": "Line one\nLine two"})

		assert.Equal(t, http.StatusBadGateway, w.Code)

		var response map[string]any
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)
		assert.NotEmpty(t, response["error"])
		assert.NotContains(t, response, "images")
	})

	t.Run("POST /api/generate invalid body", func(t *testing.T) {
		router := setupTestStoryteller(t).GetRouter()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/generate", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
