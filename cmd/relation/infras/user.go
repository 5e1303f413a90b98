package infras

import (
	"context"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
)

// Identity collaborator for the relation area: user existence, profile
// projection and both directions of the block-list.

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

// GetBlockedUserIds: ids the user has blocked.
func GetBlockedUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return userdb.GetBlockedUserIds(ctx, userId)
}

// GetBlockerUserIds: ids of users who blocked this user.
func GetBlockerUserIds(ctx context.Context, userId int64) ([]int64, error) {
	return userdb.GetBlockerUserIds(ctx, userId)
}
