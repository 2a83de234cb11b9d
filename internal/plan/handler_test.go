package plan

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gk2403-techi/greenscape/internal/catalog"
	"github.com/Gk2403-techi/greenscape/internal/core"
)

type memStore struct {
	keys []string
}

func (m *memStore) Put(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	m.keys = append(m.keys, key)
	return "/static/" + key, nil
}

func newTestRouter(t *testing.T, store *memStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	plants, err := catalog.LoadPlants("")
	require.NoError(t, err)
	engine := NewEngine(catalog.NewReference(plants), &recordingImages{}, core.SeededRandom(3), nil)

	h := NewHandler(engine, nil, nil)
	if store != nil {
		h = NewHandler(engine, store, nil)
	}

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New(IndexTemplate).Parse(
		`{{if .result}}cost={{.result.Cost}}{{else if .bulk_plans}}bulk={{len .bulk_plans}}{{else}}form{{end}}`,
	)))
	r.GET("/", h.Index)
	r.POST("/generate", h.Generate)
	return r
}

func baseForm() url.Values {
	return url.Values{
		"user_persona":  {"Homeowner"},
		"project_type":  {"Backyard"},
		"style":         {"Modern"},
		"quality_tier":  {"Standard"},
		"user_budget":   {"100000"},
		"dimensions":    {"1000"},
		"soil":          {"Loam"},
		"currency":      {"USD"},
		"water_feature": {"None"},
		"zip_code":      {"10001"},
	}
}

func multipartBody(t *testing.T, form url.Values, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, vs := range form {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, _ = part.Write([]byte("fake image"))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestIndex(t *testing.T) {
	r := newTestRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "form", w.Body.String())
}

func TestGenerateHTML(t *testing.T) {
	r := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(baseForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cost=$6,665", w.Body.String())
}

func TestGenerateJSONWithUpload(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(t, store)

	body, ct := multipartBody(t, baseForm(), "yard.JPG")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "uploads/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".jpg"))

	var resp struct {
		Plan struct {
			Cost         string `json:"cost"`
			BudgetStatus string `json:"budget_status"`
			Climate      string `json:"climate"`
			URL3D        string `json:"url_3d"`
			State        struct {
				OriginalImage string `json:"original_image"`
			} `json:"state"`
		} `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "$6,665", resp.Plan.Cost)
	assert.Equal(t, "Within Budget", resp.Plan.BudgetStatus)
	assert.Equal(t, "Temperate", resp.Plan.Climate)
	assert.NotEmpty(t, resp.Plan.URL3D)
	assert.Equal(t, "/static/"+store.keys[0], resp.Plan.State.OriginalImage)
}

func TestGenerateBulk(t *testing.T) {
	r := newTestRouter(t, nil)
	form := baseForm()
	form.Set("bulk_mode", "on")

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		BulkPlans []json.RawMessage `json:"bulk_plans"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.BulkPlans, BulkVariations)

	req = httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "bulk=3", w.Body.String())
}

func TestGenerateRejectsFileType(t *testing.T) {
	store := &memStore{}
	r := newTestRouter(t, store)

	body, ct := multipartBody(t, baseForm(), "notes.pdf")
	req := httptest.NewRequest(http.MethodPost, "/generate", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.keys)
}
