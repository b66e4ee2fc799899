package chatlog

import (
	"context"

	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type Repository interface {
	Create(ctx context.Context, log *models.ChatLog) error
	GetBySession(ctx context.Context, sessionID string) (*models.ChatLog, error)
	Update(ctx context.Context, log *models.ChatLog) error
	ListAll(ctx context.Context) ([]models.ChatLog, error)
}
