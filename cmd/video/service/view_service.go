package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type ViewService struct {
	ctx context.Context
}

func NewViewService(ctx context.Context) *ViewService {
	return &ViewService{ctx: ctx}
}

// RecordView marks the video as viewed by the user. Only the insert winner
// bumps the visit counter, so concurrent first views count exactly once;
// repeat views are no-ops.
func (s *ViewService) RecordView(userId, videoId int64) error {
	created, err := db.CreateVideoView(s.ctx, &model.VideoView{
		VideoViewId: utils.GenerateID(),
		UserId:      userId,
		VideoId:     videoId,
	})
	if err != nil {
		return err
	}
	if !created {
		return nil
	}
	if err := db.IncrementVisitCount(s.ctx, videoId); err != nil {
		return err
	}
	publishViewEvent(s.ctx, userId, videoId)
	return nil
}

// UpdateWatchProgress stores how far the user has watched. Progress only ever
// grows; a view row is created on the fly for users who land mid-playback.
func (s *ViewService) UpdateWatchProgress(userId, videoId, watchedTime int64) error {
	if watchedTime < 0 {
		return errno.RequestErr.WithMessage("watched time must not be negative")
	}
	viewed, err := db.HasViewed(s.ctx, userId, videoId)
	if err != nil {
		return err
	}
	if !viewed {
		created, err := db.CreateVideoView(s.ctx, &model.VideoView{
			VideoViewId: utils.GenerateID(),
			UserId:      userId,
			VideoId:     videoId,
			WatchedTime: watchedTime,
		})
		if err != nil {
			return err
		}
		if created {
			if err := db.IncrementVisitCount(s.ctx, videoId); err != nil {
				return err
			}
			publishViewEvent(s.ctx, userId, videoId)
			return nil
		}
		// Lost the insert race; fall through to the update.
	}
	return db.UpdateWatchedTime(s.ctx, userId, videoId, watchedTime)
}
