package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

// CreateSubscription relies on the unique (subscriber, channel) index to
// arbitrate concurrent toggles: a duplicate key reports created=false.
func CreateSubscription(ctx context.Context, subscriberId, channelId int64) (created bool, err error) {
	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
	}
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(err, "CreateSubscription failed")
	}
	return true, nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (deleted bool, err error) {
	res := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "DeleteSubscription failed")
	}
	return res.RowsAffected > 0, nil
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscribers pages through a channel's subscriber edges by recency,
// excluding the given subscriber ids. Total is counted under the same filter
// so pagination stays consistent with the returned items.
func GetSubscribers(ctx context.Context, channelId int64, excludedIds []int64, offset, limit int) ([]*model.Subscription, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId)
	if len(excludedIds) > 0 {
		query = query.Where("subscriber_id NOT IN ?", excludedIds)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetSubscribers count failed")
	}

	subs := make([]*model.Subscription, 0)
	if err := query.Order("created_at DESC, subscription_id DESC").
		Offset(offset).Limit(limit).Find(&subs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetSubscribers failed")
	}
	return subs, total, nil
}

// GetSubscribedChannels is the symmetric listing: channels a user follows,
// with the given channel ids excluded.
func GetSubscribedChannels(ctx context.Context, subscriberId int64, excludedIds []int64, offset, limit int) ([]*model.Subscription, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId)
	if len(excludedIds) > 0 {
		query = query.Where("channel_id NOT IN ?", excludedIds)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetSubscribedChannels count failed")
	}

	subs := make([]*model.Subscription, 0)
	if err := query.Order("created_at DESC, subscription_id DESC").
		Offset(offset).Limit(limit).Find(&subs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetSubscribedChannels failed")
	}
	return subs, total, nil
}

// GetSubscribedChannelIds returns the full channel-id set for one user,
// used by the mutual-subscription intersection.
func GetSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Select("channel_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type ChannelSubscriberCount struct {
	ChannelId       int64 `json:"channel_id"`
	SubscriberCount int64 `json:"subscriber_count"`
}

// GetTopChannels ranks channels by subscriber count; channel id breaks ties
// so the order is stable across requests.
func GetTopChannels(ctx context.Context, limit int) ([]*ChannelSubscriberCount, error) {
	list := make([]*ChannelSubscriberCount, 0, limit)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select("channel_id, COUNT(*) AS subscriber_count").
		Group("channel_id").
		Order("subscriber_count DESC, channel_id ASC").
		Limit(limit).
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "GetTopChannels failed")
	}
	return list, nil
}

type MonthlySubscriberCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// GetMonthlySubscriberCounts buckets a channel's subscriptions by creation
// month, most recent buckets first; the service reverses to oldest-first.
func GetMonthlySubscriberCounts(ctx context.Context, channelId int64, buckets int) ([]*MonthlySubscriberCount, error) {
	list := make([]*MonthlySubscriberCount, 0, buckets)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Select("YEAR(created_at) AS year, MONTH(created_at) AS month, COUNT(*) AS count").
		Where("channel_id = ?", channelId).
		Group("YEAR(created_at), MONTH(created_at)").
		Order("year DESC, month DESC").
		Limit(buckets).
		Scan(&list).Error; err != nil {
		return nil, errors.Wrap(err, "GetMonthlySubscriberCounts failed")
	}
	return list, nil
}
