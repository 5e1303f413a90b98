package model

import "time"

type Video struct {
	VideoId       int64     `json:"video_id" gorm:"primaryKey"`
	UserId        int64     `json:"user_id" gorm:"index"`
	Title         string    `json:"title" gorm:"size:256;index"`
	Description   string    `json:"description"`
	VideoUrl      string    `json:"video_url"`
	CoverUrl      string    `json:"cover_url"`
	Duration      int64     `json:"duration"` // seconds
	VisitCount    int64     `json:"visit_count"`
	DownloadCount int64     `json:"download_count"`
	Tags          string    `json:"tags" gorm:"size:512"` // comma separated, lowercase
	Language      string    `json:"language" gorm:"size:32"`
	Category      string    `json:"category" gorm:"size:64"`
	IsPublished   bool      `json:"is_published"`
	IsDeleted     bool      `json:"is_deleted"`
	IsPrivate     bool      `json:"is_private"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Video) TableName() string { return "videos" }

// VideoView records that a user has opened a video. The unique (user, video)
// pair is what makes first-view counting exactly-once: only the insert winner
// bumps the video's visit counter.
type VideoView struct {
	VideoViewId int64     `json:"video_view_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"uniqueIndex:uk_user_video,priority:1"`
	VideoId     int64     `json:"video_id" gorm:"uniqueIndex:uk_user_video,priority:2;index"`
	WatchedTime int64     `json:"watched_time"` // seconds, never decreases
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (VideoView) TableName() string { return "video_views" }

// VideoSummary is the listing projection with derived engagement counts.
type VideoSummary struct {
	VideoId      int64        `json:"video_id"`
	Title        string       `json:"title"`
	CoverUrl     string       `json:"cover_url"`
	Duration     int64        `json:"duration"`
	VisitCount   int64        `json:"visit_count"`
	LikeCount    int64        `json:"like_count"`
	CommentCount int64        `json:"comment_count"`
	CreatedAt    time.Time    `json:"created_at"`
	Owner        *UserSummary `json:"owner,omitempty"`
}
