package model

import "time"

type Tweet struct {
	TweetId   int64     `json:"tweet_id" gorm:"primaryKey"`
	UserId    int64     `json:"user_id" gorm:"index"`
	Content   string    `json:"content" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tweet) TableName() string { return "tweets" }
