package appointment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

// fakeRepo is an in-memory domain.Repository. A single mutex around
// check-then-insert gives it the same serialization the real repository gets
// from its transaction plus the partial unique index.
type fakeRepo struct {
	mu  sync.Mutex
	aps []*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{}
}

func blocking(status string) bool {
	for _, s := range domain.BlockingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeRepo) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ex := range f.aps {
		if ex.Date == ap.Date && ex.Time == ap.Time && blocking(ex.Status) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	cp := *ap
	f.aps = append(f.aps, &cp)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ex := range f.aps {
		if ex.ID == id {
			cp := *ex
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookedTimes(ctx context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, ex := range f.aps {
		if ex.Date == date && blocking(ex.Status) {
			times = append(times, ex.Time)
		}
	}
	return times, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Appointment, 0, len(f.aps))
	for i := len(f.aps) - 1; i >= 0; i-- {
		out = append(out, *f.aps[i])
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if blocking(ap.Status) {
		for _, ex := range f.aps {
			if ex.ID != ap.ID && ex.Date == ap.Date && ex.Time == ap.Time && blocking(ex.Status) {
				return httperr.ErrBusiness("slot_taken")
			}
		}
	}

	for _, ex := range f.aps {
		if ex.ID == ap.ID {
			*ex = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// countBlocking reports how many pending/confirmed rows occupy (date, time).
func (f *fakeRepo) countBlocking(date, timeLabel string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, ex := range f.aps {
		if ex.Date == date && ex.Time == timeLabel && blocking(ex.Status) {
			n++
		}
	}
	return n
}

var _ domain.Repository = (*fakeRepo)(nil)
