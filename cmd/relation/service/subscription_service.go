package service

import (
	"context"
	"sort"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	"vidtube.com/cmd/relation/infras"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/pagination"
)

const (
	ToggleStateAdded   = "added"
	ToggleStateRemoved = "removed"
)

type SubscriptionService struct {
	ctx context.Context
}

func NewSubscriptionService(ctx context.Context) *SubscriptionService {
	return &SubscriptionService{ctx: ctx}
}

// ToggleSubscription flips the subscriber->channel edge. Self-subscription
// is rejected before any write; the unique pair index arbitrates races the
// same way the like toggle does.
func (service *SubscriptionService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (string, error) {
	if channelId <= 0 {
		return "", errno.RequestErr.WithMessage("malformed channel id")
	}
	if subscriberId == channelId {
		return "", errno.RequestErr.WithMessage("cannot subscribe to your own channel")
	}
	exist, err := infras.UserExists(ctx, channelId)
	if err != nil {
		return "", errors.WithMessage(err, "infras.UserExists failed")
	}
	if !exist {
		return "", errno.NotFoundErr.WithMessage("channel not found")
	}

	state := ""
	subscribed, err := db.IsSubscribed(ctx, subscriberId, channelId)
	if err != nil {
		return "", errors.WithMessage(err, "db.IsSubscribed failed")
	}
	if subscribed {
		if _, err := db.DeleteSubscription(ctx, subscriberId, channelId); err != nil {
			return "", errors.WithMessage(err, "db.DeleteSubscription failed")
		}
		state = ToggleStateRemoved
	} else {
		// duplicate-key insert means a concurrent call won; the edge is
		// active either way
		if _, err := db.CreateSubscription(ctx, subscriberId, channelId); err != nil {
			return "", errors.WithMessage(err, "db.CreateSubscription failed")
		}
		state = ToggleStateAdded
	}

	cache.InvalidateSubscriberCount(ctx, channelId)
	if err := mq.PublishEngagementEvent(ctx, &mq.EngagementEvent{
		Kind:     mq.EventSubscriptionToggled,
		UserId:   subscriberId,
		TargetId: channelId,
		State:    state,
	}); err != nil {
		hlog.CtxWarnf(ctx, "publish subscription event failed: %v", err)
	}

	return state, nil
}

type SubscriberEntry struct {
	*model.UserSummary
	SubscribedAt time.Time `json:"subscribed_at"`
}

type SubscriberList struct {
	Subscribers []*SubscriberEntry `json:"subscribers"`
	pagination.Meta
}

// GetSubscribers lists a channel's subscribers newest-first, hiding anyone
// on the channel owner's block-list. The edge itself survives a block; only
// visibility is suppressed.
func (service *SubscriptionService) GetSubscribers(ctx context.Context, channelId int64, params pagination.Params) (*SubscriberList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.Normalize()

	exist, err := infras.UserExists(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.UserExists failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	blocked, err := infras.GetBlockedUserIds(ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetBlockedUserIds failed")
	}

	subs, total, err := db.GetSubscribers(ctx, channelId, blocked, params.Offset(), params.Limit())
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetSubscribers failed")
	}

	entries, err := service.resolveEntries(ctx, subs, func(s *model.Subscription) int64 { return s.SubscriberId })
	if err != nil {
		return nil, err
	}
	return &SubscriberList{Subscribers: entries, Meta: pagination.NewMeta(total, params)}, nil
}

type ChannelList struct {
	Channels []*SubscriberEntry `json:"channels"`
	pagination.Meta
}

// GetSubscribedChannels lists the channels a user follows. Blocking hides in
// both directions: channels that blocked the viewer and channels the viewer
// blocked are both excluded.
func (service *SubscriptionService) GetSubscribedChannels(ctx context.Context, subscriberId int64, params pagination.Params) (*ChannelList, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.Normalize()

	blockers, err := infras.GetBlockerUserIds(ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetBlockerUserIds failed")
	}
	blocked, err := infras.GetBlockedUserIds(ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetBlockedUserIds failed")
	}
	excluded := MergeIds(blockers, blocked)

	subs, total, err := db.GetSubscribedChannels(ctx, subscriberId, excluded, params.Offset(), params.Limit())
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetSubscribedChannels failed")
	}

	entries, err := service.resolveEntries(ctx, subs, func(s *model.Subscription) int64 { return s.ChannelId })
	if err != nil {
		return nil, err
	}
	return &ChannelList{Channels: entries, Meta: pagination.NewMeta(total, params)}, nil
}

func (service *SubscriptionService) resolveEntries(ctx context.Context, subs []*model.Subscription, pick func(*model.Subscription) int64) ([]*SubscriberEntry, error) {
	ids := make([]int64, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, pick(s))
	}
	summaries, err := infras.GetUserSummaries(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetUserSummaries failed")
	}
	entries := make([]*SubscriberEntry, 0, len(subs))
	for _, s := range subs {
		summary, ok := summaries[pick(s)]
		if !ok {
			continue
		}
		entries = append(entries, &SubscriberEntry{UserSummary: summary, SubscribedAt: s.CreatedAt})
	}
	return entries, nil
}

// IsSubscribed answers from the edge alone; blocks do not affect existence.
func (service *SubscriptionService) IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return db.IsSubscribed(ctx, subscriberId, channelId)
}

// GetSubscriberCount reads through the counter cache, recounting edges on a
// miss.
func (service *SubscriptionService) GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	if count, ok := cache.GetSubscriberCount(ctx, channelId); ok {
		return count, nil
	}
	count, err := db.GetSubscriberCount(ctx, channelId)
	if err != nil {
		return 0, errors.WithMessage(err, "db.GetSubscriberCount failed")
	}
	cache.SetSubscriberCount(ctx, channelId, count)
	return count, nil
}

// IntersectIds returns the ids present in both slices, ascending, deduplicated.
// Hashing one side keeps it O(a+b).
func IntersectIds(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	out := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, id := range b {
		if _, ok := set[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MergeIds unions two id slices, deduplicated, order unspecified.
func MergeIds(a, b []int64) []int64 {
	set := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := set[id]; !ok {
			set[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			set[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// GetMutualSubscriptions intersects the channel sets two users follow and
// resolves profiles for the overlap. Symmetric in its arguments.
func (service *SubscriptionService) GetMutualSubscriptions(ctx context.Context, userId, otherUserId int64) ([]*model.UserSummary, error) {
	if otherUserId <= 0 {
		return nil, errno.RequestErr.WithMessage("other user id is required")
	}
	mine, err := db.GetSubscribedChannelIds(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetSubscribedChannelIds failed")
	}
	theirs, err := db.GetSubscribedChannelIds(ctx, otherUserId)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetSubscribedChannelIds failed")
	}
	mutual := IntersectIds(mine, theirs)

	summaries, err := infras.GetUserSummaries(ctx, mutual)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetUserSummaries failed")
	}
	out := make([]*model.UserSummary, 0, len(mutual))
	for _, id := range mutual {
		if s, ok := summaries[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type TopChannelEntry struct {
	*model.UserSummary
	SubscriberCount int64 `json:"subscriber_count"`
}

func (service *SubscriptionService) GetTopChannels(ctx context.Context, limit int) ([]*TopChannelEntry, error) {
	if limit <= 0 {
		limit = constants.TopChannelDefaultLimit
	}
	rows, err := db.GetTopChannels(ctx, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetTopChannels failed")
	}
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ChannelId)
	}
	summaries, err := infras.GetUserSummaries(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(err, "infras.GetUserSummaries failed")
	}
	out := make([]*TopChannelEntry, 0, len(rows))
	for _, r := range rows {
		summary, ok := summaries[r.ChannelId]
		if !ok {
			continue
		}
		out = append(out, &TopChannelEntry{UserSummary: summary, SubscriberCount: r.SubscriberCount})
	}
	return out, nil
}

// GetMonthlySubscriberStats returns up to six (year, month, count) buckets,
// oldest first.
func (service *SubscriptionService) GetMonthlySubscriberStats(ctx context.Context, channelId int64) ([]*db.MonthlySubscriberCount, error) {
	rows, err := db.GetMonthlySubscriberCounts(ctx, channelId, constants.MonthlyStatsBuckets)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetMonthlySubscriberCounts failed")
	}
	ReverseMonthlyCounts(rows)
	return rows, nil
}

// ReverseMonthlyCounts flips the store's newest-first ordering in place.
func ReverseMonthlyCounts(rows []*db.MonthlySubscriberCount) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
