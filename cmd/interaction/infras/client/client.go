package client

import (
	"context"

	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

// Content and identity collaborators for the interaction area. These wrap the
// owning areas' data access behind the narrow calls this area needs, so the
// services here never touch foreign tables directly.

func VideoExists(ctx context.Context, videoId int64) (bool, error) {
	return videodb.IsVideoExist(ctx, videoId)
}

func TweetExists(ctx context.Context, tweetId int64) (bool, error) {
	return tweetdb.IsTweetExist(ctx, tweetId)
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
