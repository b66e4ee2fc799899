package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/chatlog"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type ChatLogGormRepository struct {
	db *gorm.DB
}

func NewChatLogGormRepository(db *gorm.DB) *ChatLogGormRepository {
	return &ChatLogGormRepository{db: db}
}

func (r *ChatLogGormRepository) Create(
	ctx context.Context,
	log *models.ChatLog,
) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ChatLogGormRepository) GetBySession(
	ctx context.Context,
	sessionID string,
) (*models.ChatLog, error) {

	var log models.ChatLog
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *ChatLogGormRepository) Update(
	ctx context.Context,
	log *models.ChatLog,
) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *ChatLogGormRepository) ListAll(
	ctx context.Context,
) ([]models.ChatLog, error) {

	var logs []models.ChatLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Compile-time check
var _ domain.Repository = (*ChatLogGormRepository)(nil)
