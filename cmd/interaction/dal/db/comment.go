package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed, comment_id=%d", commentId)
	}
	return nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed, comment_id=%d", commentId)
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetVideoComments fetches every comment on a video, newest first. The
// (video_id, created_at) index backs this query; the forest is assembled in
// memory by the service.
func GetVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	list := make([]*model.Comment, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").
		Find(&list).Error; err != nil {
		return nil, errors.Wrapf(err, "GetVideoComments failed, video_id=%d", videoId)
	}
	return list, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
