package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"naeilum-be/internal/bootstrap"
	"naeilum-be/internal/config"
	"naeilum-be/internal/server"
	"naeilum-be/pkg/corpus"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "app.log"))

	cfg := config.Load()
	corpusStore, err := corpus.Load(cfg.Corpus.Dir)
	if err != nil {
		t.Fatalf("Failed to load corpus: %v", err)
	}

	container := bootstrap.NewContainer(corpusStore, cfg)
	srv := server.New(cfg, container)
	return srv.GetApp()
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, cookies []*http.Cookie) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestRecommendSelectFlow(t *testing.T) {
	app := newTestApp(t)

	// 1. Submit a name and receive a shortlist.
	resp := postJSON(t, app, "/recommend", map[string]any{
		"name":   "Jane Doe",
		"gender": "female",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	assert.NotEmpty(t, cookies, "first response should issue a session cookie")

	var rec struct {
		Success bool `json:"success"`
		Names   []struct {
			Name     string `json:"name"`
			Hanja    string `json:"hanja"`
			Meaning  string `json:"meaning"`
			Category string `json:"category"`
		} `json:"names"`
	}
	decode(t, resp, &rec)
	assert.True(t, rec.Success)
	assert.Len(t, rec.Names, 5)

	// 2. Select by index; the server resolves the candidate itself.
	resp = postJSON(t, app, "/select", map[string]any{"index": 0}, cookies)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sel struct {
		Success bool `json:"success"`
		Name    struct {
			Name string `json:"name"`
		} `json:"name"`
		Fortune []struct {
			Category string `json:"category"`
			Message  string `json:"message"`
		} `json:"fortune"`
	}
	decode(t, resp, &sel)
	assert.True(t, sel.Success)
	assert.Equal(t, rec.Names[0].Name, sel.Name.Name)
	assert.Len(t, sel.Fortune, 5)

	// 3. The committed selection is readable back.
	req := httptest.NewRequest(http.MethodGet, "/selection", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSelectOutOfRange(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/recommend", map[string]any{
		"name":   "John Carter",
		"gender": "male",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	resp.Body.Close()

	resp = postJSON(t, app, "/select", map[string]any{"index": 99}, cookies)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fail struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decode(t, resp, &fail)
	assert.False(t, fail.Success)
	assert.Equal(t, "INVALID_SELECTION", fail.Error.Code)
}

func TestSelectWithoutPriorRecommend(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/select", map[string]any{"index": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fail struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decode(t, resp, &fail)
	assert.False(t, fail.Success)
	assert.Equal(t, "NO_SELECTION", fail.Error.Code)
}

func TestRecommendValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"gender": "male"}},
		{name: "missing gender", body: map[string]any{"name": "Jane"}},
		{name: "unknown gender", body: map[string]any{"name": "Jane", "gender": "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/recommend", tt.body, nil)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHealthAndTheme(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Theme defaults to system, then persists the posted value.
	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	var theme struct {
		Success bool   `json:"success"`
		Theme   string `json:"theme"`
		Source  string `json:"source"`
	}
	decode(t, resp, &theme)
	assert.True(t, theme.Success)
	assert.Equal(t, "system", theme.Theme)
	assert.Equal(t, "default", theme.Source)

	resp = postJSON(t, app, "/api/theme", map[string]any{"theme": "dark"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &theme)
	assert.Equal(t, "dark", theme.Theme)

	resp = postJSON(t, app, "/api/theme", map[string]any{"theme": "neon"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
