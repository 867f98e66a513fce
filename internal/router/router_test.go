package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/inkwell/internal/cache"
	"github.com/inkwell/internal/config"
	"github.com/inkwell/internal/logger"
	"github.com/inkwell/internal/models"
	"github.com/inkwell/internal/provider"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		_ = models.CloseDB(db)
	})

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	return SetupRouter(cfg, provider.NewContainer(cfg, db))
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) envelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func TestAuthorRoutes(t *testing.T) {
	r := setupTestRouter(t)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/authors", gin.H{"name": "Jane Doe", "phone_number": "555-123-4567"})
	if resp.StatusCode != 0 {
		t.Fatalf("create author failed: %+v", resp)
	}
	var author models.Author
	if err := json.Unmarshal(resp.Data, &author); err != nil {
		t.Fatalf("decode author failed: %v", err)
	}
	if author.ID == 0 || author.PhoneNumber == nil || *author.PhoneNumber != "5551234567" {
		t.Fatalf("unexpected author: %+v", author)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/v1/authors", gin.H{"name": "Jane Doe"})
	if resp.StatusCode != 422 {
		t.Fatalf("duplicate name want 422 got %+v", resp)
	}
	var data map[string]string
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data failed: %v", err)
	}
	if data["field"] != models.FieldName {
		t.Fatalf("field want name got %s", data["field"])
	}

	path := fmt.Sprintf("/api/v1/authors/%d", author.ID)
	if resp = doJSON(t, r, http.MethodGet, path, nil); resp.StatusCode != 0 {
		t.Fatalf("get author failed: %+v", resp)
	}
	if resp = doJSON(t, r, http.MethodDelete, path, nil); resp.StatusCode != 0 {
		t.Fatalf("delete author failed: %+v", resp)
	}
	if resp = doJSON(t, r, http.MethodGet, path, nil); resp.StatusCode != 404 {
		t.Fatalf("deleted author want 404 got %+v", resp)
	}
	if resp = doJSON(t, r, http.MethodGet, "/api/v1/authors/abc", nil); resp.StatusCode != 400 {
		t.Fatalf("bad id want 400 got %+v", resp)
	}
}

func TestPostRoutes(t *testing.T) {
	r := setupTestRouter(t)
	content := strings.Repeat("c", 250)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/posts", gin.H{"title": "Hello World"})
	if resp.StatusCode != 422 {
		t.Fatalf("plain title want 422 got %+v", resp)
	}

	resp = doJSON(t, r, http.MethodPost, "/api/v1/posts", gin.H{
		"title":    "Top 5 Tips",
		"content":  content,
		"category": "Fiction",
	})
	if resp.StatusCode != 0 {
		t.Fatalf("create post failed: %+v", resp)
	}
	var post models.Post
	if err := json.Unmarshal(resp.Data, &post); err != nil {
		t.Fatalf("decode post failed: %v", err)
	}

	resp = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", post.ID), gin.H{
		"title":    "Top 5 Tips",
		"category": "Poetry",
	})
	if resp.StatusCode != 422 {
		t.Fatalf("bad category want 422 got %+v", resp)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?category=Fiction", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var page struct {
		StatusCode int           `json:"status_code"`
		Data       []models.Post `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode list failed: %v", err)
	}
	if page.StatusCode != 0 || page.Pagination.Total != 1 || len(page.Data) != 1 {
		t.Fatalf("unexpected list response: %s", w.Body.String())
	}
}

func TestHealthzAndNoRoute(t *testing.T) {
	r := setupTestRouter(t)
	if resp := doJSON(t, r, http.MethodGet, "/healthz", nil); resp.StatusCode != 0 {
		t.Fatalf("healthz failed: %+v", resp)
	}
	if resp := doJSON(t, r, http.MethodGet, "/api/v1/missing", nil); resp.StatusCode != 404 {
		t.Fatalf("unknown route want 404 got %+v", resp)
	}
}

func TestMalformedBody(t *testing.T) {
	r := setupTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("malformed body want 400 got %+v", resp)
	}
}

func TestDeleteAuthorLogsCacheInvalidationFailure(t *testing.T) {
	r := setupTestRouter(t)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis failed: %v", err)
	}
	port, err := strconv.Atoi(mr.Port())
	if err != nil {
		t.Fatalf("parse miniredis port failed: %v", err)
	}
	if err := cache.InitRedis(&config.RedisConfig{Enabled: true, Host: mr.Host(), Port: port}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() {
		_ = cache.Close()
	})

	core, logs := observer.New(zap.WarnLevel)
	previous := logger.L
	logger.L = zap.New(core)
	t.Cleanup(func() {
		logger.L = previous
	})

	resp := doJSON(t, r, http.MethodPost, "/api/v1/authors", gin.H{"name": "Cached Author"})
	if resp.StatusCode != 0 {
		t.Fatalf("create author failed: %+v", resp)
	}
	var author models.Author
	if err := json.Unmarshal(resp.Data, &author); err != nil {
		t.Fatalf("decode author failed: %v", err)
	}
	path := fmt.Sprintf("/api/v1/authors/%d", author.ID)
	if resp = doJSON(t, r, http.MethodGet, path, nil); resp.StatusCode != 0 {
		t.Fatalf("get author failed: %+v", resp)
	}
	if !mr.Exists(fmt.Sprintf("inkwell:author:%d", author.ID)) {
		t.Fatalf("author should be cached after get")
	}

	mr.Close()
	if resp = doJSON(t, r, http.MethodDelete, path, nil); resp.StatusCode != 0 {
		t.Fatalf("delete should succeed when cache is down: %+v", resp)
	}

	entries := logs.FilterMessage("author_cache_del_failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one cache invalidation warning, got %d", len(entries))
	}
	if fields := entries[0].ContextMap(); fields["author_id"] != uint64(author.ID) {
		t.Fatalf("unexpected log fields: %+v", fields)
	}
}
