package model

import "time"

type User struct {
	UserId    int64     `json:"user_id" gorm:"primaryKey"`
	UserName  string    `json:"user_name" gorm:"uniqueIndex;size:64"`
	Email     string    `json:"email" gorm:"size:128"`
	FullName  string    `json:"full_name" gorm:"size:128"`
	Password  string    `json:"-" gorm:"size:128"`
	AvatarUrl string    `json:"avatar_url"`
	CoverUrl  string    `json:"cover_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserBlock is one entry of a user's block-list. The unique pair index makes
// Block idempotent under concurrent calls.
type UserBlock struct {
	Id            int64     `json:"id" gorm:"primaryKey"`
	UserId        int64     `json:"user_id" gorm:"uniqueIndex:uk_user_blocked,priority:1"`
	BlockedUserId int64     `json:"blocked_user_id" gorm:"uniqueIndex:uk_user_blocked,priority:2"`
	CreatedAt     time.Time `json:"created_at"`
}

func (UserBlock) TableName() string { return "user_blocks" }

// UserSummary is the profile projection embedded in listing responses.
type UserSummary struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}
