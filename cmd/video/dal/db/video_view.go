package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

// CreateVideoView inserts the (user, video) view marker. The unique index
// makes the first insert the only winner; a duplicate key means another
// request already recorded the view and we report created=false.
func CreateVideoView(ctx context.Context, view *model.VideoView) (created bool, err error) {
	err = DB.WithContext(ctx).Create(view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(err, "CreateVideoView failed")
	}
	return true, nil
}

// UpdateWatchedTime records watch progress, keeping the high-water mark so a
// rewind never shrinks the stored value.
func UpdateWatchedTime(ctx context.Context, userId, videoId, watchedTime int64) error {
	if err := DB.WithContext(ctx).Model(&model.VideoView{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).
		Updates(map[string]interface{}{
			"watched_time": gorm.Expr("GREATEST(watched_time, ?)", watchedTime),
		}).Error; err != nil {
		return errors.Wrapf(err, "UpdateWatchedTime failed, user_id=%d video_id=%d", userId, videoId)
	}
	return nil
}

func HasViewed(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoView{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountViewersForVideo counts the distinct viewers of a single video.
func CountViewersForVideo(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoView{}).
		Where("video_id = ?", videoId).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "CountViewersForVideo failed")
	}
	return count, nil
}

// SumWatchedTimeForVideo totals watch seconds accumulated on one video.
func SumWatchedTimeForVideo(ctx context.Context, videoId int64) (int64, error) {
	var sum *int64
	if err := DB.WithContext(ctx).Model(&model.VideoView{}).
		Where("video_id = ?", videoId).
		Select("SUM(watched_time)").
		Scan(&sum).Error; err != nil {
		return 0, errors.Wrap(err, "SumWatchedTimeForVideo failed")
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// GetDistinctViewerCount counts unique viewers across an owner's live videos.
func GetDistinctViewerCount(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).
		Table("video_views").
		Joins("JOIN videos ON videos.video_id = video_views.video_id").
		Where("videos.user_id = ? AND videos.is_deleted = ?", ownerId, false).
		Distinct("video_views.user_id").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "GetDistinctViewerCount failed")
	}
	return count, nil
}

// SumWatchedTime totals watch seconds accumulated on an owner's live videos.
func SumWatchedTime(ctx context.Context, ownerId int64) (int64, error) {
	var sum *int64
	if err := DB.WithContext(ctx).
		Table("video_views").
		Joins("JOIN videos ON videos.video_id = video_views.video_id").
		Where("videos.user_id = ? AND videos.is_deleted = ?", ownerId, false).
		Select("SUM(video_views.watched_time)").
		Scan(&sum).Error; err != nil {
		return 0, errors.Wrap(err, "SumWatchedTime failed")
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// GetWatchHistory pages a user's viewed videos, most recent first. Deleted
// videos keep their view rows but drop out of history.
func GetWatchHistory(ctx context.Context, userId int64, offset, limit int) ([]*model.Video, int64, error) {
	base := DB.WithContext(ctx).
		Table("video_views").
		Joins("JOIN videos ON videos.video_id = video_views.video_id").
		Where("video_views.user_id = ? AND videos.is_deleted = ?", userId, false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetWatchHistory count failed")
	}

	videos := make([]*model.Video, 0)
	if err := base.
		Select("videos.*").
		Order("video_views.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&videos).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetWatchHistory failed")
	}
	return videos, total, nil
}
