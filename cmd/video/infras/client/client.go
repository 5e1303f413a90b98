// Package client bridges the video area to the user and interaction areas.
package client

import (
	"context"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/constants"
)

func UserExists(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func GetUserSummaries(ctx context.Context, userIds []int64) (map[int64]*model.UserSummary, error) {
	users, err := userdb.GetUsersByIds(ctx, userIds)
	if err != nil {
		return nil, err
	}
	summaries := make(map[int64]*model.UserSummary, len(users))
	for _, u := range users {
		summaries[u.UserId] = u.Summary()
	}
	return summaries, nil
}

func GetBlockedUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return userdb.GetBlockedUserIds(ctx, userId)
}

func GetBlockerUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return userdb.GetBlockerUserIds(ctx, userId)
}

// IsBlockedEither reports whether a block edge exists in either direction.
func IsBlockedEither(ctx context.Context, a, b int64) (bool, error) {
	blocked, err := userdb.IsBlocked(ctx, a, b)
	if err != nil {
		return false, err
	}
	if blocked {
		return true, nil
	}
	return userdb.IsBlocked(ctx, b, a)
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	return interactiondb.GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (int64, error) {
	return interactiondb.GetVideoCommentCount(ctx, videoId)
}

func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	return interactiondb.GetLikedVideoIds(ctx, userId)
}

func GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	return relationdb.GetSubscriberCount(ctx, channelId)
}
