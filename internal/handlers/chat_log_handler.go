package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/chatlog"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/httpresp"
	"github.com/prem7151/Kashtex-Agency/internal/metrics"
	"github.com/prem7151/Kashtex-Agency/internal/models"
	ucChatlog "github.com/prem7151/Kashtex-Agency/internal/usecase/chatlog"
)

type ChatLogHandler struct {
	repo    domain.Repository
	upsert  *ucChatlog.Upsert
	metrics *metrics.Metrics
}

func NewChatLogHandler(
	repo domain.Repository,
	upsert *ucChatlog.Upsert,
	m *metrics.Metrics,
) *ChatLogHandler {
	return &ChatLogHandler{
		repo:    repo,
		upsert:  upsert,
		metrics: m,
	}
}

type CreateChatLogRequest struct {
	SessionID    string `json:"session_id" binding:"required"`
	Messages     string `json:"messages" binding:"required"`
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
}

type UpsertChatLogRequest struct {
	Messages     string `json:"messages" binding:"required"`
	VisitorName  string `json:"visitor_name"`
	VisitorEmail string `json:"visitor_email"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *ChatLogHandler) Create(c *gin.Context) {
	var req CreateChatLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Required fields are missing.")
		return
	}

	log := models.ChatLog{
		SessionID:    req.SessionID,
		Messages:     req.Messages,
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
	}

	if err := h.repo.Create(c.Request.Context(), &log); err != nil {
		httperr.Internal(c, "failed_to_create_chat_log", "Failed to create chat log.")
		return
	}

	h.metrics.ChatLogsUpserted.Inc()
	httpresp.Created(c, log)
}

// ======================================================
// UPSERT BY SESSION (PUBLIC)
// ======================================================

func (h *ChatLogHandler) UpsertBySession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req UpsertChatLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Messages are required.")
		return
	}

	log, created, err := h.upsert.Execute(
		c.Request.Context(),
		ucChatlog.UpsertInput{
			SessionID:    sessionID,
			Messages:     req.Messages,
			VisitorName:  req.VisitorName,
			VisitorEmail: req.VisitorEmail,
		},
	)
	if err != nil {
		httperr.Internal(c, "failed_to_update_chat_log", "Failed to update chat log.")
		return
	}

	h.metrics.ChatLogsUpserted.Inc()

	if created {
		httpresp.Created(c, log)
		return
	}
	httpresp.OK(c, log)
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *ChatLogHandler) List(c *gin.Context) {
	logs, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_chat_logs", "Failed to fetch chat logs.")
		return
	}

	httpresp.List(c, logs)
}
