package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatLog holds one chatbot conversation. Messages is the raw JSON array
// produced by the widget; the server stores it without interpreting it.
type ChatLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SessionID    string `gorm:"size:100;not null;uniqueIndex" json:"session_id"`
	VisitorName  string `gorm:"size:100" json:"visitor_name"`
	VisitorEmail string `gorm:"size:100" json:"visitor_email"`

	Messages string `gorm:"type:text;not null" json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *ChatLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
