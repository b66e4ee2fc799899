package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prem7151/Kashtex-Agency/internal/audit"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/httpresp"
	"github.com/prem7151/Kashtex-Agency/internal/mailer"
	"github.com/prem7151/Kashtex-Agency/internal/metrics"
	"github.com/prem7151/Kashtex-Agency/internal/middleware"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type ContactHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	mail    *mailer.Dispatcher
	metrics *metrics.Metrics
}

func NewContactHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	mail *mailer.Dispatcher,
	m *metrics.Metrics,
) *ContactHandler {
	return &ContactHandler{
		db:      db,
		audit:   auditDispatcher,
		mail:    mail,
		metrics: m,
	}
}

type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *ContactHandler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Required fields are missing.")
		return
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&contact).Error; err != nil {
		httperr.Internal(c, "failed_to_create_contact", "Failed to submit contact form.")
		return
	}

	if h.mail != nil {
		h.mail.Dispatch(mailer.ContactNotification(&contact))
	}

	h.metrics.ContactsCreated.Inc()
	httpresp.Created(c, contact)
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *ContactHandler) List(c *gin.Context) {
	var contacts []models.Contact
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {

		httperr.Internal(c, "failed_to_list_contacts", "Failed to fetch contacts.")
		return
	}

	httpresp.List(c, contacts)
}

// ======================================================
// MARK READ (ADMIN)
// ======================================================

func (h *ContactHandler) MarkRead(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var contact models.Contact
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&contact).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "contact_not_found", "Contact not found.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_contact", "Failed to fetch contact.")
		return
	}

	contact.IsRead = true
	if err := h.db.WithContext(c.Request.Context()).Save(&contact).Error; err != nil {
		httperr.Internal(c, "failed_to_update_contact", "Failed to update contact.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "contact_read",
		Entity:   "contact",
		EntityID: &contact.ID,
	})

	httpresp.OK(c, contact)
}
