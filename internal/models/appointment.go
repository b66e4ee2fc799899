package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Service string `gorm:"size:100;not null" json:"service"`

	// Calendar date (YYYY-MM-DD) and slot label, both stored as opaque text
	// and only ever compared for equality. A date-typed column would come
	// back from the driver as time.Time and re-render as RFC3339.
	Date string `gorm:"size:10;not null;index:idx_appointments_date" json:"date"`
	Time string `gorm:"size:20;not null" json:"time"`

	Details string `gorm:"type:text" json:"details"`
	Status  string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
