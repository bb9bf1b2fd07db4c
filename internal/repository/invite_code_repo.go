package repository

import (
	"context"

	"github.com/google/uuid"

	"shadownet/burnerhub/internal/model"
)

type InviteCodeRepository interface {
	Create(ctx context.Context, code *model.InviteCode) error
	GetByCode(ctx context.Context, code string) (*model.InviteCode, error)
	List(ctx context.Context) ([]model.InviteCode, error)
	// MarkUsed consumes the code for userID. It only succeeds while the code
	// is still unused; a second call reports ErrRecordNotFound so concurrent
	// redemption attempts cannot both win.
	MarkUsed(ctx context.Context, code string, userID uuid.UUID) error
}
