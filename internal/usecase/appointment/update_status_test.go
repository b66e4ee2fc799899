package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/httperr"
)

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateAppointment(repo, nil, nil)
	update := NewUpdateStatus(repo, nil)

	ap, err := create.Execute(context.Background(), bookingInput("2025-06-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = update.Execute(context.Background(), "admin-1", ap.ID, "archived")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	// nothing mutated
	got, err := repo.GetByID(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := newFakeRepo()
	update := NewUpdateStatus(repo, nil)

	_, err := update.Execute(context.Background(), "admin-1", "no-such-id", domain.StatusConfirmed)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestUpdateStatusConfirms(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateAppointment(repo, nil, nil)
	update := NewUpdateStatus(repo, nil)

	ap, err := create.Execute(context.Background(), bookingInput("2025-06-01", "10:00 AM"))
	require.NoError(t, err)

	got, err := update.Execute(context.Background(), "admin-1", ap.ID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
}

func TestReactivatingIntoOccupiedSlotRejected(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateAppointment(repo, nil, nil)
	update := NewUpdateStatus(repo, nil)

	first, err := create.Execute(context.Background(), bookingInput("2025-06-01", "10:00 AM"))
	require.NoError(t, err)

	_, err = update.Execute(context.Background(), "admin-1", first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	second, err := create.Execute(context.Background(), bookingInput("2025-06-01", "10:00 AM"))
	require.NoError(t, err)

	// Bringing the cancelled appointment back would double-book the slot.
	_, err = update.Execute(context.Background(), "admin-1", first.ID, domain.StatusPending)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	got, err := repo.GetByID(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)
	assert.Equal(t, 1, repo.countBlocking("2025-06-01", "10:00 AM"))
}
