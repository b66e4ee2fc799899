package appointment

import (
	"context"

	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type Repository interface {
	// -------- Create (conflict-safe) --------

	// CreateIfSlotFree inserts the appointment only if no pending or
	// confirmed appointment occupies (date, time). Returns
	// ErrBusiness("slot_taken") when the slot is occupied, including when a
	// concurrent request wins the race.
	CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error

	// -------- Read --------

	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// ListBookedTimes returns the slot labels of every blocking appointment
	// on the given date, in creation order.
	ListBookedTimes(ctx context.Context, date string) ([]string, error)

	ListAll(ctx context.Context) ([]models.Appointment, error)

	// -------- State change --------

	// UpdateStatus persists a status transition. Returns
	// ErrBusiness("slot_taken") when the transition would put two blocking
	// appointments in the same slot.
	UpdateStatus(ctx context.Context, ap *models.Appointment) error
}
