package db

import (
	"log"
	"time"

	"github.com/prem7151/Kashtex-Agency/internal/config"
	"github.com/prem7151/Kashtex-Agency/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Appointment{},
		&models.ChatLog{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := ensureSlotIndex(db); err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	return db
}

// ensureSlotIndex creates the partial unique index backing the
// no-double-booking invariant: at most one pending or confirmed appointment
// per (date, time). Cancelled rows stay out of the index so a cancelled slot
// can be rebooked. The index is the last line of defense on every write path,
// so the service must not come up without it.
func ensureSlotIndex(db *gorm.DB) error {
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_appointment_slot
        ON appointments (date, time)
        WHERE status IN ('pending', 'confirmed')
    `).Error
}
