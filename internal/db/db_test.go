package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Nothing listens on port 1, so index creation fails; the failure must be
// reported instead of leaving the slot invariant unenforced.
func TestEnsureSlotIndexSurfacesFailure(t *testing.T) {
	db, err := gorm.Open(
		postgres.Open("postgres://127.0.0.1:1/kashtex_test?sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	assert.Error(t, ensureSlotIndex(db))
}
