package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrap(err, "CreateTweet failed")
	}
	return nil
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func IsTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Update("content", content).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweetContent failed, tweet_id=%d", tweetId)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).
		Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTweet failed, tweet_id=%d", tweetId)
	}
	return nil
}

// GetUserTweets pages a user's tweets, newest first.
func GetUserTweets(ctx context.Context, userId int64, offset, limit int) ([]*model.Tweet, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetUserTweets count failed")
	}

	tweets := make([]*model.Tweet, 0)
	if err := base.Order("created_at DESC, tweet_id DESC").
		Offset(offset).Limit(limit).
		Find(&tweets).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetUserTweets failed")
	}
	return tweets, total, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
