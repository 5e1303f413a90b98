package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

// CreateBlock inserts a block-list edge. A duplicate-key error means the
// block already exists and is reported as such so callers can no-op.
func CreateBlock(ctx context.Context, userId, blockedUserId int64) (created bool, err error) {
	block := &model.UserBlock{
		Id:            utils.GenerateID(),
		UserId:        userId,
		BlockedUserId: blockedUserId,
	}
	if err := DB.WithContext(ctx).Create(block).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(err, "CreateBlock failed")
	}
	return true, nil
}

// DeleteBlock is idempotent: removing an absent edge is not an error.
func DeleteBlock(ctx context.Context, userId, blockedUserId int64) error {
	if err := DB.WithContext(ctx).
		Where("user_id = ? AND blocked_user_id = ?", userId, blockedUserId).
		Delete(&model.UserBlock{}).Error; err != nil {
		return errors.Wrap(err, "DeleteBlock failed")
	}
	return nil
}

// GetBlockedUserIds returns the ids the given user has blocked.
func GetBlockedUserIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.UserBlock{}).
		Where("user_id = ?", userId).Select("blocked_user_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetBlockerUserIds returns the ids of users who have blocked the given user.
// Graph queries honor blocks in both directions.
func GetBlockerUserIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.UserBlock{}).
		Where("blocked_user_id = ?", userId).Select("user_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func IsBlocked(ctx context.Context, userId, blockedUserId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.UserBlock{}).
		Where("user_id = ? AND blocked_user_id = ?", userId, blockedUserId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
