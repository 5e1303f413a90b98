package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// CreateLike attempts the insert and lets the unique (user, kind, target)
// index arbitrate races: a duplicate key is reported as created=false, never
// as an error. This is the atomic half of the toggle.
func CreateLike(ctx context.Context, userId int64, targetKind string, targetId int64) (created bool, err error) {
	like := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     userId,
		TargetKind: targetKind,
		TargetId:   targetId,
	}
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(err, "CreateLike failed")
	}
	return true, nil
}

// DeleteLike removes the edge if present; deleting an absent edge is a no-op.
func DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (deleted bool, err error) {
	res := DB.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "DeleteLike failed")
	}
	return res.RowsAffected > 0, nil
}

func IsLikeExist(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ?", targetKind, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedVideoIds lists ids of videos the user liked, most recent like first.
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userId, constants.LikeTargetVideo).
		Order("created_at DESC").
		Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
