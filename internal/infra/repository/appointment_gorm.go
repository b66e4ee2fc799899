package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create (conflict-safe)
// --------------------------------------------------

// CreateIfSlotFree locks any blocking row for (date, time) inside a
// transaction before inserting. The partial unique index on the same
// predicate backs this up, so a race lost between two transactions still
// comes back as slot_taken rather than a second row.
func (r *AppointmentGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var existing models.Appointment
		err := blockingSlotQuery(tx, ap.Date, ap.Time).Take(&existing).Error

		switch {
		case err == nil:
			return httperr.ErrBusiness("slot_taken")
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// blockingSlotQuery selects the blocking appointment row for (date, time)
// under a row lock. Postgres only accepts FOR UPDATE on a plain row query,
// so this must stay a row fetch, never an aggregate.
func blockingSlotQuery(tx *gorm.DB, date, timeLabel string) *gorm.DB {
	return tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where(
			"date = ? AND time = ? AND status IN ?",
			date, timeLabel, domain.BlockingStatuses,
		)
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND status IN ?", date, domain.BlockingStatuses).
		Order("created_at ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Save(ap).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
