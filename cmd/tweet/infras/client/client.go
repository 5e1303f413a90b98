// Package client bridges the tweet area to the user and interaction areas.
package client

import (
	"context"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
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

func GetTweetLikeCount(ctx context.Context, tweetId int64) (int64, error) {
	return interactiondb.GetLikeCount(ctx, constants.LikeTargetTweet, tweetId)
}

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
