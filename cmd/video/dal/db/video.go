package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrap(err, "InsertVideo failed")
	}
	return nil
}

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// IsVideoExist reports whether a live (not soft-deleted) video exists.
func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ? AND is_deleted = ?", videoId, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id IN ? AND is_deleted = ?", videoIds, false).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func UpdateVideoMeta(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoMeta failed, video_id=%d", videoId)
	}
	return nil
}

func SetPublishStatus(ctx context.Context, videoId int64, published bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Update("is_published", published).Error; err != nil {
		return errors.Wrapf(err, "SetPublishStatus failed, video_id=%d", videoId)
	}
	return nil
}

// SoftDeleteVideo is terminal: every aggregate and listing filters the flag.
func SoftDeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Update("is_deleted", true).Error; err != nil {
		return errors.Wrapf(err, "SoftDeleteVideo failed, video_id=%d", videoId)
	}
	return nil
}

// IncrementVisitCount bumps the view counter in place. Only the first-view
// insert winner calls this, which is what keeps the counter exact.
func IncrementVisitCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementVisitCount failed, video_id=%d", videoId)
	}
	return nil
}

func IncrementDownloadCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("download_count", gorm.Expr("download_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrementDownloadCount failed, video_id=%d", videoId)
	}
	return nil
}

func CountVideosByOwner(ctx context.Context, ownerId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_deleted = ?", ownerId, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountPublishedVideosByOwner(ctx context.Context, ownerId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ? AND is_deleted = ?", ownerId, true, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func SumViewsByOwner(ctx context.Context, ownerId int64) (total int64, err error) {
	var sum *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_deleted = ?", ownerId, false).
		Select("SUM(visit_count)").Scan(&sum).Error; err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

func GetOwnedVideoIds(ctx context.Context, ownerId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_deleted = ?", ownerId, false).
		Select("video_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

const (
	likeCountSubquery    = "(SELECT COUNT(*) FROM likes WHERE likes.target_kind = 'video' AND likes.target_id = videos.video_id) AS like_count"
	commentCountSubquery = "(SELECT COUNT(*) FROM comments WHERE comments.video_id = videos.video_id) AS comment_count"
)

type VideoStatsRow struct {
	model.Video
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// GetChannelVideos pages over a channel's live videos with derived like and
// comment counts, sorted by a whitelisted column. publicOnly restricts the
// listing to published, non-private videos for viewers other than the owner.
func GetChannelVideos(ctx context.Context, channelId int64, publicOnly bool, orderClause string, offset, limit int) ([]*VideoStatsRow, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_deleted = ?", channelId, false)
	if publicOnly {
		base = base.Where("is_published = ? AND is_private = ?", true, false)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetChannelVideos count failed")
	}

	rows := make([]*VideoStatsRow, 0)
	if err := base.
		Select("videos.*, " + likeCountSubquery + ", " + commentCountSubquery).
		Order(orderClause).
		Offset(offset).Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetChannelVideos failed")
	}
	return rows, total, nil
}

// GetTrendingVideos ranks public videos by view count.
func GetTrendingVideos(ctx context.Context, limit int) ([]*VideoStatsRow, error) {
	rows := make([]*VideoStatsRow, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_published = ? AND is_deleted = ? AND is_private = ?", true, false, false).
		Select("videos.*, " + likeCountSubquery + ", " + commentCountSubquery).
		Order("visit_count DESC, video_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "GetTrendingVideos failed")
	}
	return rows, nil
}

// GetRandomVideos samples uniformly over the eligible set. ORDER BY RAND()
// walks every candidate row, which is the price of an unbiased sample
// without a precomputed key.
func GetRandomVideos(ctx context.Context, excludedOwnerIds []int64, limit int) ([]*model.Video, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_published = ? AND is_deleted = ? AND is_private = ?", true, false, false)
	if len(excludedOwnerIds) > 0 {
		query = query.Where("user_id NOT IN ?", excludedOwnerIds)
	}
	videos := make([]*model.Video, 0, limit)
	if err := query.Order("RAND()").Limit(limit).Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "GetRandomVideos failed")
	}
	return videos, nil
}

// SumLikesOnOwnedVideos counts Like edges over all of an owner's live videos.
func SumLikesOnOwnedVideos(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).
		Table("likes").
		Joins("JOIN videos ON videos.video_id = likes.target_id").
		Where("likes.target_kind = ? AND videos.user_id = ? AND videos.is_deleted = ?", constants.LikeTargetVideo, ownerId, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "SumLikesOnOwnedVideos failed")
	}
	return count, nil
}

// SumCommentsOnOwnedVideos counts comments across an owner's live videos.
func SumCommentsOnOwnedVideos(ctx context.Context, ownerId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).
		Table("comments").
		Joins("JOIN videos ON videos.video_id = comments.video_id").
		Where("videos.user_id = ? AND videos.is_deleted = ?", ownerId, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "SumCommentsOnOwnedVideos failed")
	}
	return count, nil
}

// GetTopVideoByViews returns the owner's most viewed published video, or nil
// when there is none.
func GetTopVideoByViews(ctx context.Context, ownerId int64) (*model.Video, error) {
	var video model.Video
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ? AND is_published = ? AND is_deleted = ?", ownerId, true, false).
		Order("visit_count DESC, video_id ASC").
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &video, nil
}

// SearchVideos filters public, live videos by case-insensitive title
// substring, optional tag membership and a duration window.
func SearchVideos(ctx context.Context, keyword string, tags []string, minDuration, maxDuration int64, offset, limit int) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).
		Where("is_published = ? AND is_deleted = ? AND is_private = ?", true, false, false)

	if keyword != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keyword)+"%")
	}
	if maxDuration > 0 {
		query = query.Where("duration BETWEEN ? AND ?", minDuration, maxDuration)
	} else if minDuration > 0 {
		query = query.Where("duration >= ?", minDuration)
	}
	if len(tags) > 0 {
		tagQuery := DB
		for i, tag := range tags {
			cond := "FIND_IN_SET(?, tags) > 0"
			if i == 0 {
				tagQuery = DB.Where(cond, strings.ToLower(tag))
			} else {
				tagQuery = tagQuery.Or(cond, strings.ToLower(tag))
			}
		}
		query = query.Where(tagQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "SearchVideos count failed")
	}

	videos := make([]*model.Video, 0)
	if err := query.Order("created_at DESC, video_id DESC").
		Offset(offset).Limit(limit).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrap(err, "SearchVideos failed")
	}
	return videos, total, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
