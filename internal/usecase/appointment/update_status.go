package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/prem7151/Kashtex-Agency/internal/audit"
	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves an appointment to the target status. A transition that would
// re-occupy a taken slot (cancelled back to pending, say) is rejected with
// slot_taken; the unique index re-verifies the invariant on every write.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID string,
	appointmentID string,
	to domain.Status,
) (*models.Appointment, error) {

	if err := domain.ValidateTransition(to); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	from := ap.Status
	ap.Status = string(to)

	if err := uc.repo.UpdateStatus(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "appointment_status_changed",
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]string{"from": from, "to": string(to)},
		})
	}

	return ap, nil
}
