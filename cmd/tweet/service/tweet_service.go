package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/tweet/dal/db"
	"vidtube.com/cmd/tweet/infras/client"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

// TweetEntry is a tweet with its derived like count and author.
type TweetEntry struct {
	*model.Tweet
	LikeCount int64              `json:"like_count"`
	Owner     *model.UserSummary `json:"owner,omitempty"`
}

type TweetList struct {
	Tweets []*TweetEntry `json:"tweets"`
	pagination.Meta
}

func validateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("tweet content must not be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxTweetLength {
		return errno.RequestErr.WithMessage("tweet content too long")
	}
	return nil
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{
		TweetId: utils.GenerateID(),
		UserId:  userId,
		Content: content,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *TweetService) UpdateTweet(userId, tweetId int64, content string) error {
	if err := validateTweetContent(content); err != nil {
		return err
	}
	if _, err := s.ownedTweet(tweetId, userId); err != nil {
		return err
	}
	return db.UpdateTweetContent(s.ctx, tweetId, content)
}

func (s *TweetService) DeleteTweet(userId, tweetId int64) error {
	if _, err := s.ownedTweet(tweetId, userId); err != nil {
		return err
	}
	return db.DeleteTweet(s.ctx, tweetId)
}

func (s *TweetService) GetTweetById(viewerId, tweetId int64) (*TweetEntry, error) {
	tweet, err := db.GetTweetInfo(s.ctx, tweetId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("tweet not found")
		}
		return nil, err
	}
	if viewerId > 0 && viewerId != tweet.UserId {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, tweet.UserId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("tweet not found")
		}
	}
	entries, err := s.buildEntries([]*model.Tweet{tweet})
	if err != nil {
		return nil, err
	}
	return entries[0], nil
}

// GetUserTweets pages an author's tweets for a viewer, newest first. A block
// in either direction hides the author's feed.
func (s *TweetService) GetUserTweets(viewerId, authorId int64, params pagination.Params) (*TweetList, error) {
	if err := params.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	params = params.Normalize()

	exists, err := client.UserExists(s.ctx, authorId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	if viewerId > 0 && viewerId != authorId {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, authorId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
	}

	tweets, total, err := db.GetUserTweets(s.ctx, authorId, params.Offset(), params.Limit())
	if err != nil {
		return nil, err
	}
	entries, err := s.buildEntries(tweets)
	if err != nil {
		return nil, err
	}
	return &TweetList{Tweets: entries, Meta: pagination.NewMeta(total, params)}, nil
}

func (s *TweetService) ownedTweet(tweetId, userId int64) (*model.Tweet, error) {
	tweet, err := db.GetTweetInfo(s.ctx, tweetId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("tweet not found")
		}
		return nil, err
	}
	if tweet.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("not the tweet owner")
	}
	return tweet, nil
}

func (s *TweetService) buildEntries(tweets []*model.Tweet) ([]*TweetEntry, error) {
	ownerIds := make([]int64, 0, len(tweets))
	seen := make(map[int64]struct{}, len(tweets))
	for _, t := range tweets {
		if _, ok := seen[t.UserId]; !ok {
			seen[t.UserId] = struct{}{}
			ownerIds = append(ownerIds, t.UserId)
		}
	}
	owners, err := client.GetUserSummaries(s.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	entries := make([]*TweetEntry, 0, len(tweets))
	for _, t := range tweets {
		likeCount, err := client.GetTweetLikeCount(s.ctx, t.TweetId)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &TweetEntry{Tweet: t, LikeCount: likeCount, Owner: owners[t.UserId]})
	}
	return entries, nil
}
