package mq

// Engagement events published after a successful store write. Consumers fan
// these out to notifications and cache refresh; the store is already
// consistent by the time an event exists, so losing one costs freshness,
// never correctness.

const (
	EventLikeToggled         = "like_toggled"
	EventSubscriptionToggled = "subscription_toggled"
	EventVideoViewed         = "video_viewed"
	EventCommentAdded        = "comment_added"
)

type EngagementEvent struct {
	EventId    string `json:"event_id"`
	Kind       string `json:"kind"`
	UserId     int64  `json:"user_id"`
	TargetKind string `json:"target_kind,omitempty"`
	TargetId   int64  `json:"target_id"`
	State      string `json:"state,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}
