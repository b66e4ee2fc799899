package appointment

import (
	"context"

	"github.com/prem7151/Kashtex-Agency/internal/audit"
	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/mailer"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name    string
	Email   string
	Phone   string
	Service string

	Date string
	Time string

	Details string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	mail  *mailer.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	mail *mailer.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		mail:  mail,
	}
}

// Execute reserves the slot and creates the appointment. Whatever status the
// caller may have supplied is ignored; every public booking starts pending.
// Returns ErrBusiness("slot_taken") when the slot is occupied.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap := &models.Appointment{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Details: in.Details,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "appointment_created",
			Entity:   "appointment",
			EntityID: &ap.ID,
		})
	}

	// Fire-and-forget; a failed send never affects the booking.
	if uc.mail != nil {
		uc.mail.Dispatch(mailer.AppointmentNotification(ap))
	}

	return ap, nil
}
