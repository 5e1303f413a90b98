package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
)

type BlockService struct {
	ctx context.Context
}

func NewBlockService(ctx context.Context) *BlockService {
	return &BlockService{ctx: ctx}
}

func (service *BlockService) BlockUser(ctx context.Context, userId, targetId int64) error {
	if userId == targetId {
		return errno.RequestErr.WithMessage("cannot block yourself")
	}
	exist, err := db.IsUserExist(ctx, targetId)
	if err != nil {
		return errors.WithMessage(err, "db.IsUserExist failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("user not found")
	}
	// duplicate insert means the block already exists, which is fine
	if _, err := db.CreateBlock(ctx, userId, targetId); err != nil {
		return errors.WithMessage(err, "db.CreateBlock failed")
	}
	return nil
}

func (service *BlockService) UnblockUser(ctx context.Context, userId, targetId int64) error {
	if err := db.DeleteBlock(ctx, userId, targetId); err != nil {
		return errors.WithMessage(err, "db.DeleteBlock failed")
	}
	return nil
}

// GetBlockedUserIds is the identity-collaborator surface consumed by the
// relation and video services for block filtering.
func (service *BlockService) GetBlockedUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return db.GetBlockedUserIds(ctx, userId)
}

// GetBlockerUserIds lists users who blocked the given user; the symmetric
// half of block filtering.
func (service *BlockService) GetBlockerUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return db.GetBlockerUserIds(ctx, userId)
}
