package appointment

import "github.com/prem7151/Kashtex-Agency/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// BlockingStatuses are the statuses that occupy a slot. A cancelled
// appointment never blocks a rebooking; every code path that asks whether a
// slot is taken must use this list so the query and write sides agree.
var BlockingStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

// ===============================
// Validations
// ===============================

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ValidateTransition checks an admin status change. Any transition between
// the three known statuses is allowed; only unknown values are rejected.
func ValidateTransition(to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// InitialStatus is forced on every public booking regardless of caller input.
func InitialStatus() Status {
	return StatusPending
}
