package model

import "time"

type Playlist struct {
	PlaylistId  int64     `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64     `json:"user_id" gorm:"index"`
	Name        string    `json:"name" gorm:"size:128"`
	Description string    `json:"description" gorm:"size:1024"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo is the playlist -> video membership edge. The unique pair
// index gives adds set semantics: concurrent or repeated adds of the same
// video leave a single entry.
type PlaylistVideo struct {
	PlaylistVideoId int64     `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64     `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video,priority:1"`
	VideoId         int64     `json:"video_id" gorm:"uniqueIndex:uk_playlist_video,priority:2;index"`
	CreatedAt       time.Time `json:"created_at"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
