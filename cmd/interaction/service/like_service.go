package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/interaction/infras/client"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
)

const (
	ToggleStateAdded   = "added"
	ToggleStateRemoved = "removed"
)

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

func validateTargetKind(targetKind string) error {
	switch targetKind {
	case constants.LikeTargetVideo, constants.LikeTargetComment, constants.LikeTargetTweet:
		return nil
	}
	return errno.RequestErr.WithMessage("invalid like target kind")
}

func (service *LikeService) checkTargetExists(ctx context.Context, targetKind string, targetId int64) error {
	var exist bool
	var err error
	switch targetKind {
	case constants.LikeTargetVideo:
		exist, err = client.VideoExists(ctx, targetId)
	case constants.LikeTargetComment:
		exist, err = db.IsCommentExist(ctx, targetId)
	case constants.LikeTargetTweet:
		exist, err = client.TweetExists(ctx, targetId)
	}
	if err != nil {
		return errors.WithMessage(err, "target lookup failed")
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("like target not found")
	}
	return nil
}

// ToggleLike flips the (user, target) like edge and reports the new state.
// The unique index on the edge is the arbiter under concurrency: when two
// calls race to create, the loser's duplicate-key insert is reconciled to
// "added" instead of erroring, and deletes of absent edges stay no-ops, so
// the edge count for a pair is always 0 or 1.
func (service *LikeService) ToggleLike(ctx context.Context, userId int64, targetKind string, targetId int64) (string, error) {
	if targetId <= 0 {
		return "", errno.RequestErr.WithMessage("malformed target id")
	}
	if err := validateTargetKind(targetKind); err != nil {
		return "", err
	}
	if err := service.checkTargetExists(ctx, targetKind, targetId); err != nil {
		return "", err
	}

	state := ""
	exist, err := db.IsLikeExist(ctx, userId, targetKind, targetId)
	if err != nil {
		return "", errors.WithMessage(err, "db.IsLikeExist failed")
	}
	if exist {
		if _, err := db.DeleteLike(ctx, userId, targetKind, targetId); err != nil {
			return "", errors.WithMessage(err, "db.DeleteLike failed")
		}
		state = ToggleStateRemoved
	} else {
		created, err := db.CreateLike(ctx, userId, targetKind, targetId)
		if err != nil {
			return "", errors.WithMessage(err, "db.CreateLike failed")
		}
		// created=false means a concurrent call inserted first; the edge is
		// active either way
		_ = created
		state = ToggleStateAdded
	}

	cache.InvalidateLikeCount(ctx, targetKind, targetId)
	if err := mq.PublishEngagementEvent(ctx, &mq.EngagementEvent{
		Kind:       mq.EventLikeToggled,
		UserId:     userId,
		TargetKind: targetKind,
		TargetId:   targetId,
		State:      state,
	}); err != nil {
		hlog.CtxWarnf(ctx, "publish like event failed: %v", err)
	}

	return state, nil
}

// GetLikeCount reads through the redis counter cache and falls back to a
// fresh count over the edges; the store stays authoritative.
func (service *LikeService) GetLikeCount(ctx context.Context, targetKind string, targetId int64) (int64, error) {
	if err := validateTargetKind(targetKind); err != nil {
		return 0, err
	}
	if count, ok := cache.GetLikeCount(ctx, targetKind, targetId); ok {
		return count, nil
	}
	count, err := db.GetLikeCount(ctx, targetKind, targetId)
	if err != nil {
		return 0, errors.WithMessage(err, "db.GetLikeCount failed")
	}
	cache.SetLikeCount(ctx, targetKind, targetId, count)
	return count, nil
}

func (service *LikeService) IsLiked(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	if err := validateTargetKind(targetKind); err != nil {
		return false, err
	}
	return db.IsLikeExist(ctx, userId, targetKind, targetId)
}

// GetLikedVideoIds backs the liked-videos listing in the video area.
func (service *LikeService) GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	return db.GetLikedVideoIds(ctx, userId)
}
