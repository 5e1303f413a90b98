package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/cmd/video/infras/client"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

type PublishVideoParams struct {
	UserId      int64
	Title       string
	Description string
	Tags        []string
	Category    string
	Language    string
	Duration    int64
	IsPrivate   bool
	Video       io.Reader
	VideoSize   int64
	VideoType   string
	Cover       io.Reader
	CoverSize   int64
	CoverType   string
}

// PublishVideo stores the media in object storage and creates the video row
// already published. Tags are normalized to a lowercase comma list so tag
// search can match without case juggling.
func (s *VideoService) PublishVideo(p *PublishVideoParams) (*model.Video, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, errno.RequestErr.WithMessage("title must not be empty")
	}
	if p.Duration <= 0 {
		return nil, errno.RequestErr.WithMessage("duration must be positive")
	}
	if p.Video == nil || p.VideoSize <= 0 {
		return nil, errno.RequestErr.WithMessage("video file is required")
	}

	videoId := utils.GenerateID()
	videoUrl, err := oss.UploadObject(s.ctx, fmt.Sprintf("videos/%d", videoId), p.Video, p.VideoSize, p.VideoType)
	if err != nil {
		return nil, errno.UnavailableErr.WithMessage("video upload failed")
	}
	coverUrl := ""
	if p.Cover != nil && p.CoverSize > 0 {
		coverUrl, err = oss.UploadObject(s.ctx, fmt.Sprintf("covers/%d", videoId), p.Cover, p.CoverSize, p.CoverType)
		if err != nil {
			return nil, errno.UnavailableErr.WithMessage("cover upload failed")
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      p.UserId,
		Title:       strings.TrimSpace(p.Title),
		Description: p.Description,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    p.Duration,
		Tags:        NormalizeTags(p.Tags),
		Language:    p.Language,
		Category:    p.Category,
		IsPublished: true,
		IsPrivate:   p.IsPrivate,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

type UpdateVideoParams struct {
	VideoId     int64
	UserId      int64
	Title       string
	Description string
	Tags        []string
	Category    string
	Language    string
}

// UpdateVideo patches metadata fields. Empty fields are left untouched.
func (s *VideoService) UpdateVideo(p *UpdateVideoParams) error {
	video, err := s.ownedVideo(p.VideoId, p.UserId)
	if err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if title := strings.TrimSpace(p.Title); title != "" {
		updates["title"] = title
	}
	if p.Description != "" {
		updates["description"] = p.Description
	}
	if len(p.Tags) > 0 {
		updates["tags"] = NormalizeTags(p.Tags)
	}
	if p.Category != "" {
		updates["category"] = p.Category
	}
	if p.Language != "" {
		updates["language"] = p.Language
	}
	if len(updates) == 0 {
		return nil
	}
	return db.UpdateVideoMeta(s.ctx, video.VideoId, updates)
}

// TogglePublishStatus flips the published flag and returns the new state.
func (s *VideoService) TogglePublishStatus(userId, videoId int64) (published bool, err error) {
	video, err := s.ownedVideo(videoId, userId)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := db.SetPublishStatus(s.ctx, videoId, next); err != nil {
		return false, err
	}
	return next, nil
}

// SoftDeleteVideo marks the video deleted. The media objects stay in storage;
// the flag alone removes the video from every listing and aggregate.
func (s *VideoService) SoftDeleteVideo(userId, videoId int64) error {
	if _, err := s.ownedVideo(videoId, userId); err != nil {
		return err
	}
	return db.SoftDeleteVideo(s.ctx, videoId)
}

// DownloadVideo returns the media URL and bumps the download counter.
func (s *VideoService) DownloadVideo(userId, videoId int64) (string, error) {
	video, err := s.visibleVideo(videoId, userId)
	if err != nil {
		return "", err
	}
	if err := db.IncrementDownloadCount(s.ctx, videoId); err != nil {
		return "", err
	}
	return video.VideoUrl, nil
}

// GetVideoById resolves a video for a viewer, records the first view and
// returns the video with derived engagement counts.
func (s *VideoService) GetVideoById(viewerId, videoId int64) (*model.VideoSummary, *model.Video, error) {
	video, err := s.visibleVideo(videoId, viewerId)
	if err != nil {
		return nil, nil, err
	}

	if viewerId > 0 && viewerId != video.UserId {
		if err := NewViewService(s.ctx).RecordView(viewerId, videoId); err != nil {
			hlog.CtxWarnf(s.ctx, "record view failed, video_id=%d: %v", videoId, err)
		} else {
			// Re-read so the returned counter includes this view.
			if fresh, err := db.GetVideoInfo(s.ctx, videoId); err == nil {
				video = fresh
			}
		}
	}

	summaries, err := s.buildSummaries([]*model.Video{video})
	if err != nil {
		return nil, nil, err
	}
	return summaries[0], video, nil
}

type VideoList struct {
	Videos []*model.VideoSummary `json:"videos"`
	pagination.Meta
}

// GetLikedVideos pages the videos a user liked, in like order.
func (s *VideoService) GetLikedVideos(userId int64, params pagination.Params) (*VideoList, error) {
	if err := params.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	params = params.Normalize()

	ids, err := client.GetLikedVideoIds(s.ctx, userId)
	if err != nil {
		return nil, err
	}

	total := int64(len(ids))
	start := params.Offset()
	if start > len(ids) {
		start = len(ids)
	}
	end := start + params.Limit()
	if end > len(ids) {
		end = len(ids)
	}
	pageIds := ids[start:end]

	videos, err := db.GetVideosByIds(s.ctx, pageIds)
	if err != nil {
		return nil, err
	}
	ordered := orderByIds(videos, pageIds)

	summaries, err := s.buildSummaries(ordered)
	if err != nil {
		return nil, err
	}
	return &VideoList{Videos: summaries, Meta: pagination.NewMeta(total, params)}, nil
}

// GetWatchHistory pages the viewer's watch history, most recent first.
func (s *VideoService) GetWatchHistory(userId int64, params pagination.Params) (*VideoList, error) {
	if err := params.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	params = params.Normalize()

	videos, total, err := db.GetWatchHistory(s.ctx, userId, params.Offset(), params.Limit())
	if err != nil {
		return nil, err
	}
	summaries, err := s.buildSummaries(videos)
	if err != nil {
		return nil, err
	}
	return &VideoList{Videos: summaries, Meta: pagination.NewMeta(total, params)}, nil
}

// ownedVideo loads a live video and checks ownership.
func (s *VideoService) ownedVideo(videoId, userId int64) (*model.Video, error) {
	video, err := db.GetVideoInfo(s.ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}
	if video.IsDeleted {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("not the video owner")
	}
	return video, nil
}

// visibleVideo loads a video and applies the viewer visibility rules:
// deleted videos do not exist, private and unpublished videos are owner-only,
// and a block edge in either direction hides the video entirely.
func (s *VideoService) visibleVideo(videoId, viewerId int64) (*model.Video, error) {
	video, err := db.GetVideoInfo(s.ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
		return nil, err
	}
	if video.IsDeleted {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId == viewerId {
		return video, nil
	}
	if video.IsPrivate || !video.IsPublished {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}
	if viewerId > 0 {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, video.UserId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("video not found")
		}
	}
	return video, nil
}

func (s *VideoService) buildSummaries(videos []*model.Video) ([]*model.VideoSummary, error) {
	ownerIds := make([]int64, 0, len(videos))
	seen := make(map[int64]struct{}, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.UserId]; !ok {
			seen[v.UserId] = struct{}{}
			ownerIds = append(ownerIds, v.UserId)
		}
	}
	owners, err := client.GetUserSummaries(s.ctx, ownerIds)
	if err != nil {
		return nil, err
	}

	summaries := make([]*model.VideoSummary, 0, len(videos))
	for _, v := range videos {
		likeCount, err := client.GetVideoLikeCount(s.ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		commentCount, err := client.GetVideoCommentCount(s.ctx, v.VideoId)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &model.VideoSummary{
			VideoId:      v.VideoId,
			Title:        v.Title,
			CoverUrl:     v.CoverUrl,
			Duration:     v.Duration,
			VisitCount:   v.VisitCount,
			LikeCount:    likeCount,
			CommentCount: commentCount,
			CreatedAt:    v.CreatedAt,
			Owner:        owners[v.UserId],
		})
	}
	return summaries, nil
}

// NormalizeTags lowercases, trims and dedupes tags into the stored comma list.
func NormalizeTags(tags []string) string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return strings.Join(out, ",")
}

// orderByIds reorders fetched videos to match the id slice, skipping ids the
// fetch did not return (deleted videos keep their like edges).
func orderByIds(videos []*model.Video, ids []int64) []*model.Video {
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	ordered := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byId[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered
}

func publishViewEvent(ctx context.Context, userId, videoId int64) {
	event := &mq.EngagementEvent{
		Kind:       mq.EventVideoViewed,
		UserId:     userId,
		TargetKind: constants.LikeTargetVideo,
		TargetId:   videoId,
		Timestamp:  time.Now().Unix(),
	}
	if err := mq.PublishEngagementEvent(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish view event failed, video_id=%d: %v", videoId, err)
	}
}
