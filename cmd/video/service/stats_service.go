package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/cmd/video/infras/client"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

type StatsService struct {
	ctx context.Context
}

func NewStatsService(ctx context.Context) *StatsService {
	return &StatsService{ctx: ctx}
}

// Sort keys accepted by channel video listings. The clause is taken from this
// table only, never from request input.
var channelSortClauses = map[string]string{
	"latest":   "created_at DESC, video_id DESC",
	"oldest":   "created_at ASC, video_id ASC",
	"views":    "visit_count DESC, video_id ASC",
	"likes":    "like_count DESC, video_id ASC",
	"comments": "comment_count DESC, video_id ASC",
	"title":    "title ASC, video_id ASC",
}

// SortOrderClause maps a request sort key onto a SQL order clause. An empty
// key falls back to latest-first.
func SortOrderClause(sortBy string) (string, bool) {
	if sortBy == "" {
		return channelSortClauses["latest"], true
	}
	clause, ok := channelSortClauses[sortBy]
	return clause, ok
}

type ChannelStats struct {
	ChannelId       int64 `json:"channel_id"`
	VideoCount      int64 `json:"video_count"`
	SubscriberCount int64 `json:"subscriber_count"`
	TotalViews      int64 `json:"total_views"`
	TotalLikes      int64 `json:"total_likes"`
	TotalComments   int64 `json:"total_comments"`
}

// GetChannelStats aggregates a channel's engagement totals. Everything is
// derived from the edge tables and video rows at read time.
func (s *StatsService) GetChannelStats(channelId int64) (*ChannelStats, error) {
	exists, err := client.UserExists(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	videoCount, err := db.CountVideosByOwner(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	subscriberCount, err := client.GetSubscriberCount(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalViews, err := db.SumViewsByOwner(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalLikes, err := db.SumLikesOnOwnedVideos(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	totalComments, err := db.SumCommentsOnOwnedVideos(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	return &ChannelStats{
		ChannelId:       channelId,
		VideoCount:      videoCount,
		SubscriberCount: subscriberCount,
		TotalViews:      totalViews,
		TotalLikes:      totalLikes,
		TotalComments:   totalComments,
	}, nil
}

// GetChannelVideos lists a channel's videos for a viewer. The owner sees
// drafts and private videos; everyone else sees the public set only, and a
// block in either direction hides the channel altogether.
func (s *StatsService) GetChannelVideos(viewerId, channelId int64, sortBy string, params pagination.Params) (*VideoList, error) {
	if err := params.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	params = params.Normalize()

	orderClause, ok := SortOrderClause(sortBy)
	if !ok {
		return nil, errno.RequestErr.WithMessage("unknown sort key: " + sortBy)
	}

	exists, err := client.UserExists(s.ctx, channelId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("channel not found")
	}

	publicOnly := viewerId != channelId
	if publicOnly && viewerId > 0 {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, channelId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("channel not found")
		}
	}

	rows, total, err := db.GetChannelVideos(s.ctx, channelId, publicOnly, orderClause, params.Offset(), params.Limit())
	if err != nil {
		return nil, err
	}

	owners, err := client.GetUserSummaries(s.ctx, []int64{channelId})
	if err != nil {
		return nil, err
	}
	summaries := make([]*model.VideoSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, statsRowToSummary(row, owners[channelId]))
	}
	return &VideoList{Videos: summaries, Meta: pagination.NewMeta(total, params)}, nil
}

// GetTrendingVideos returns the most viewed published videos.
func (s *StatsService) GetTrendingVideos(limit int) ([]*model.VideoSummary, error) {
	if limit <= 0 {
		limit = constants.TrendingVideoDefaultLimit
	}
	rows, err := db.GetTrendingVideos(s.ctx, limit)
	if err != nil {
		return nil, err
	}

	ownerIds := make([]int64, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserId]; !ok {
			seen[row.UserId] = struct{}{}
			ownerIds = append(ownerIds, row.UserId)
		}
	}
	owners, err := client.GetUserSummaries(s.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.VideoSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, statsRowToSummary(row, owners[row.UserId]))
	}
	return summaries, nil
}

// GetSuggestedVideos samples random public videos for the viewer, excluding
// channels with a block edge in either direction.
func (s *StatsService) GetSuggestedVideos(viewerId int64, count int) ([]*model.VideoSummary, error) {
	if count <= 0 {
		count = constants.SuggestedVideoCount
	}

	var excluded []int64
	if viewerId > 0 {
		blocked, err := client.GetBlockedUserIds(s.ctx, viewerId)
		if err != nil {
			return nil, err
		}
		blockers, err := client.GetBlockerUserIds(s.ctx, viewerId)
		if err != nil {
			return nil, err
		}
		excluded = append(append(excluded, blocked...), blockers...)
	}

	videos, err := db.GetRandomVideos(s.ctx, excluded, count)
	if err != nil {
		return nil, err
	}
	return NewVideoService(s.ctx).buildSummaries(videos)
}

type VideoAnalytics struct {
	VideoId          int64 `json:"video_id"`
	VisitCount       int64 `json:"visit_count"`
	DownloadCount    int64 `json:"download_count"`
	DistinctViewers  int64 `json:"distinct_viewers"`
	TotalWatchedTime int64 `json:"total_watched_time"`
	LikeCount        int64 `json:"like_count"`
	CommentCount     int64 `json:"comment_count"`
}

// GetVideoAnalytics returns per-video engagement for the owner's view.
func (s *StatsService) GetVideoAnalytics(ownerId, videoId int64) (*VideoAnalytics, error) {
	video, err := NewVideoService(s.ctx).ownedVideo(videoId, ownerId)
	if err != nil {
		return nil, err
	}
	likeCount, err := client.GetVideoLikeCount(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	commentCount, err := client.GetVideoCommentCount(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	viewers, err := db.CountViewersForVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	watchedTime, err := db.SumWatchedTimeForVideo(s.ctx, videoId)
	if err != nil {
		return nil, err
	}
	return &VideoAnalytics{
		VideoId:          video.VideoId,
		VisitCount:       video.VisitCount,
		DownloadCount:    video.DownloadCount,
		DistinctViewers:  viewers,
		TotalWatchedTime: watchedTime,
		LikeCount:        likeCount,
		CommentCount:     commentCount,
	}, nil
}

type CreatorDashboard struct {
	ChannelStats
	PublishedVideoCount int64               `json:"published_video_count"`
	DistinctViewers     int64               `json:"distinct_viewers"`
	TotalWatchedTime    int64               `json:"total_watched_time"`
	TopVideo            *model.VideoSummary `json:"top_video,omitempty"`
}

// GetCreatorDashboard assembles the owner-facing overview: channel totals
// plus audience depth and the top performing video.
func (s *StatsService) GetCreatorDashboard(ownerId int64) (*CreatorDashboard, error) {
	stats, err := s.GetChannelStats(ownerId)
	if err != nil {
		return nil, err
	}
	publishedCount, err := db.CountPublishedVideosByOwner(s.ctx, ownerId)
	if err != nil {
		return nil, err
	}
	distinctViewers, err := db.GetDistinctViewerCount(s.ctx, ownerId)
	if err != nil {
		return nil, err
	}
	watchedTime, err := db.SumWatchedTime(s.ctx, ownerId)
	if err != nil {
		return nil, err
	}

	dashboard := &CreatorDashboard{
		ChannelStats:        *stats,
		PublishedVideoCount: publishedCount,
		DistinctViewers:     distinctViewers,
		TotalWatchedTime:    watchedTime,
	}

	topVideo, err := db.GetTopVideoByViews(s.ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if topVideo != nil {
		summaries, err := NewVideoService(s.ctx).buildSummaries([]*model.Video{topVideo})
		if err != nil {
			return nil, err
		}
		dashboard.TopVideo = summaries[0]
	}
	return dashboard, nil
}

type SearchVideosParams struct {
	Keyword     string
	Tags        []string
	MinDuration int64
	MaxDuration int64
	pagination.Params
}

// SearchVideos filters the public catalog by title keyword, tags and a
// duration window.
func (s *StatsService) SearchVideos(p *SearchVideosParams) (*VideoList, error) {
	if err := p.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	if p.MinDuration < 0 || p.MaxDuration < 0 {
		return nil, errno.RequestErr.WithMessage("duration bounds must not be negative")
	}
	if p.MaxDuration > 0 && p.MinDuration > p.MaxDuration {
		return nil, errno.RequestErr.WithMessage("min duration exceeds max duration")
	}
	params := p.Normalize()

	videos, total, err := db.SearchVideos(s.ctx, p.Keyword, p.Tags, p.MinDuration, p.MaxDuration, params.Offset(), params.Limit())
	if err != nil {
		return nil, err
	}
	summaries, err := NewVideoService(s.ctx).buildSummaries(videos)
	if err != nil {
		return nil, err
	}
	return &VideoList{Videos: summaries, Meta: pagination.NewMeta(total, params)}, nil
}

func statsRowToSummary(row *db.VideoStatsRow, owner *model.UserSummary) *model.VideoSummary {
	return &model.VideoSummary{
		VideoId:      row.VideoId,
		Title:        row.Title,
		CoverUrl:     row.CoverUrl,
		Duration:     row.Duration,
		VisitCount:   row.VisitCount,
		LikeCount:    row.LikeCount,
		CommentCount: row.CommentCount,
		CreatedAt:    row.CreatedAt,
		Owner:        owner,
	}
}
