package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/chatlog"
	"github.com/prem7151/Kashtex-Agency/internal/httpresp"
	"github.com/prem7151/Kashtex-Agency/internal/metrics"
	"github.com/prem7151/Kashtex-Agency/internal/models"
	ucChatlog "github.com/prem7151/Kashtex-Agency/internal/usecase/chatlog"
)

type memChatRepo struct {
	mu   sync.Mutex
	logs map[string]*models.ChatLog
}

func (f *memChatRepo) Create(ctx context.Context, log *models.ChatLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	cp := *log
	f.logs[log.SessionID] = &cp
	return nil
}

func (f *memChatRepo) GetBySession(ctx context.Context, sessionID string) (*models.ChatLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if log, ok := f.logs[sessionID]; ok {
		cp := *log
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *memChatRepo) Update(ctx context.Context, log *models.ChatLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logs[log.SessionID] = log
	return nil
}

func (f *memChatRepo) ListAll(ctx context.Context) ([]models.ChatLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.ChatLog, 0, len(f.logs))
	for _, log := range f.logs {
		out = append(out, *log)
	}
	return out, nil
}

var _ domain.Repository = (*memChatRepo)(nil)

func newChatRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memChatRepo{logs: map[string]*models.ChatLog{}}
	h := NewChatLogHandler(repo, ucChatlog.NewUpsert(repo), metrics.New(prometheus.NewRegistry()))

	r := gin.New()
	r.POST("/api/chat-logs", h.Create)
	r.PATCH("/api/chat-logs/:sessionId", h.UpsertBySession)
	r.GET("/api/admin/chat-logs", fakeAdmin, h.List)
	return r
}

func TestChatLogCreate(t *testing.T) {
	r := newChatRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat-logs", map[string]string{
		"session_id": "sess-1",
		"messages":   `["hi"]`,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var log models.ChatLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "sess-1", log.SessionID)
}

func TestChatLogCreateMissingFieldsIs400(t *testing.T) {
	r := newChatRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat-logs", map[string]string{
		"session_id": "sess-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatLogUpsertCreatesThenUpdates(t *testing.T) {
	r := newChatRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/chat-logs/sess-9", map[string]string{
		"messages":     `["hi"]`,
		"visitor_name": "Sam Okafor",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/chat-logs/sess-9", map[string]string{
		"messages": `["hi","pricing?"]`,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var log models.ChatLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.Equal(t, `["hi","pricing?"]`, log.Messages)
	assert.Equal(t, "Sam Okafor", log.VisitorName)
}

func TestChatLogAdminList(t *testing.T) {
	r := newChatRouter(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, r, http.MethodPost, "/api/chat-logs", map[string]string{
			"session_id": "sess-1",
			"messages":   `["hi"]`,
		}).Code)

	w := doJSON(t, r, http.MethodGet, "/api/admin/chat-logs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res httpresp.ListResponse[models.ChatLog]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Data, 1)
}
