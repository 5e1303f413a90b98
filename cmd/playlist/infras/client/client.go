// Package client bridges the playlist area to the user and video areas.
package client

import (
	"context"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
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

func GetVideoInfo(ctx context.Context, videoId int64) (*model.Video, error) {
	return videodb.GetVideoInfo(ctx, videoId)
}

func IsVideoNotFound(err error) bool {
	return videodb.IsRecordNotFound(err)
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	return videodb.GetVideosByIds(ctx, videoIds)
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
