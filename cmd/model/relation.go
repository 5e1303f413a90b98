package model

import "time"

// Subscription is the subscriber -> channel edge. The unique pair index is
// the arbiter for concurrent toggle calls; self-subscription is rejected at
// the service layer before any write.
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"uniqueIndex:uk_sub_channel,priority:1"`
	ChannelId      int64     `json:"channel_id" gorm:"uniqueIndex:uk_sub_channel,priority:2;index"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
