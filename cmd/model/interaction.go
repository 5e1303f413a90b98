package model

import "time"

type Comment struct {
	CommentId int64     `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64     `json:"video_id" gorm:"index:idx_video_created,priority:1"`
	UserId    int64     `json:"user_id" gorm:"index"`
	ParentId  int64     `json:"parent_id"` // 0 for root comments
	Content   string    `json:"content" gorm:"size:2048"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_video_created,priority:2"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string { return "comments" }

// Like is a tagged union over its target: exactly one of video, comment or
// tweet, identified by (TargetKind, TargetId). The unique triple keeps at
// most one edge per (user, target) pair regardless of concurrent toggles.
type Like struct {
	LikeId     int64     `json:"like_id" gorm:"primaryKey"`
	UserId     int64     `json:"user_id" gorm:"uniqueIndex:uk_user_target,priority:1"`
	TargetKind string    `json:"target_kind" gorm:"size:16;uniqueIndex:uk_user_target,priority:2"`
	TargetId   int64     `json:"target_id" gorm:"uniqueIndex:uk_user_target,priority:3;index"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Like) TableName() string { return "likes" }
