package chatlog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/prem7151/Kashtex-Agency/internal/domain/chatlog"
	"github.com/prem7151/Kashtex-Agency/internal/models"
)

type UpsertInput struct {
	SessionID    string
	Messages     string
	VisitorName  string
	VisitorEmail string
}

type Upsert struct {
	repo domain.Repository
}

func NewUpsert(repo domain.Repository) *Upsert {
	return &Upsert{repo: repo}
}

// Execute creates the transcript on first write for a session, otherwise
// replaces the message payload. Visitor identity is only overwritten when
// the widget actually sent it; an update without a name must not erase one
// captured earlier in the conversation.
func (uc *Upsert) Execute(
	ctx context.Context,
	in UpsertInput,
) (*models.ChatLog, bool, error) {

	existing, err := uc.repo.GetBySession(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}

		log := &models.ChatLog{
			SessionID:    in.SessionID,
			Messages:     in.Messages,
			VisitorName:  in.VisitorName,
			VisitorEmail: in.VisitorEmail,
		}
		if err := uc.repo.Create(ctx, log); err != nil {
			return nil, false, err
		}
		return log, true, nil
	}

	existing.Messages = in.Messages
	if in.VisitorName != "" {
		existing.VisitorName = in.VisitorName
	}
	if in.VisitorEmail != "" {
		existing.VisitorEmail = in.VisitorEmail
	}

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}

	return existing, false, nil
}
