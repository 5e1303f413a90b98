package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	"vidtube.com/cmd/playlist/infras/client"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// PlaylistEntry is a playlist row with its member count.
type PlaylistEntry struct {
	*model.Playlist
	VideoCount int64 `json:"video_count"`
}

type PlaylistList struct {
	Playlists []*PlaylistEntry `json:"playlists"`
	pagination.Meta
}

// PlaylistDetail is a playlist with its owner and member videos in the
// order they were added.
type PlaylistDetail struct {
	*model.Playlist
	Owner  *model.UserSummary    `json:"owner,omitempty"`
	Videos []*model.VideoSummary `json:"videos"`
}

func validatePlaylistMeta(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return errno.RequestErr.WithMessage("playlist name must not be empty")
	}
	if utf8.RuneCountInString(name) > constants.MaxPlaylistNameLength {
		return errno.RequestErr.WithMessage("playlist name too long")
	}
	if strings.TrimSpace(description) == "" {
		return errno.RequestErr.WithMessage("playlist description must not be empty")
	}
	if utf8.RuneCountInString(description) > constants.MaxPlaylistDescriptionLength {
		return errno.RequestErr.WithMessage("playlist description too long")
	}
	return nil
}

func (s *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if err := validatePlaylistMeta(name, description); err != nil {
		return nil, err
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// UpdatePlaylist patches name and description; an empty field is unchanged,
// and at least one must be given.
func (s *PlaylistService) UpdatePlaylist(userId, playlistId int64, name, description string) error {
	if name == "" && description == "" {
		return errno.RequestErr.WithMessage("nothing to update")
	}
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	updates := make(map[string]interface{}, 2)
	if name != "" {
		if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > constants.MaxPlaylistNameLength {
			return errno.RequestErr.WithMessage("invalid playlist name")
		}
		updates["name"] = name
	}
	if description != "" {
		if utf8.RuneCountInString(description) > constants.MaxPlaylistDescriptionLength {
			return errno.RequestErr.WithMessage("invalid playlist description")
		}
		updates["description"] = description
	}
	return db.UpdatePlaylistMeta(s.ctx, playlistId, updates)
}

func (s *PlaylistService) DeletePlaylist(userId, playlistId int64) error {
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	return db.DeletePlaylist(s.ctx, playlistId)
}

// AddVideo puts a video into the owner's playlist. Adds have set semantics:
// repeating an add leaves a single entry and still succeeds.
func (s *PlaylistService) AddVideo(userId, playlistId, videoId int64) error {
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	video, err := client.GetVideoInfo(s.ctx, videoId)
	if err != nil {
		if client.IsVideoNotFound(err) {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		return err
	}
	if video.IsDeleted {
		return errno.NotFoundErr.WithMessage("video not found")
	}
	if video.UserId != userId {
		if !video.IsPublished || video.IsPrivate {
			return errno.NotFoundErr.WithMessage("video not found")
		}
		blocked, err := client.IsBlockedEither(s.ctx, userId, video.UserId)
		if err != nil {
			return err
		}
		if blocked {
			return errno.NotFoundErr.WithMessage("video not found")
		}
	}
	_, err = db.AddVideo(s.ctx, playlistId, videoId)
	return err
}

// RemoveVideo drops a video from the owner's playlist; removing a video that
// is not in the playlist is a no-op.
func (s *PlaylistService) RemoveVideo(userId, playlistId, videoId int64) error {
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	_, err := db.RemoveVideo(s.ctx, playlistId, videoId)
	return err
}

// GetPlaylistById resolves a playlist with its owner and member videos. For
// viewers other than the owner, members that are deleted, unpublished or
// private are dropped from the listing.
func (s *PlaylistService) GetPlaylistById(viewerId, playlistId int64) (*PlaylistDetail, error) {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
		return nil, err
	}
	if viewerId > 0 && viewerId != playlist.UserId {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, playlist.UserId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
	}

	owners, err := client.GetUserSummaries(s.ctx, []int64{playlist.UserId})
	if err != nil {
		return nil, err
	}

	ids, err := db.GetPlaylistVideoIds(s.ctx, playlistId)
	if err != nil {
		return nil, err
	}
	videos, err := client.GetVideosByIds(s.ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}

	summaries := make([]*model.VideoSummary, 0, len(ids))
	for _, id := range ids {
		v, ok := byId[id]
		if !ok || v.IsDeleted {
			continue
		}
		if viewerId != playlist.UserId && (!v.IsPublished || v.IsPrivate) {
			continue
		}
		summaries = append(summaries, &model.VideoSummary{
			VideoId:    v.VideoId,
			Title:      v.Title,
			CoverUrl:   v.CoverUrl,
			Duration:   v.Duration,
			VisitCount: v.VisitCount,
			CreatedAt:  v.CreatedAt,
		})
	}

	return &PlaylistDetail{
		Playlist: playlist,
		Owner:    owners[playlist.UserId],
		Videos:   summaries,
	}, nil
}

// GetUserPlaylists pages an owner's playlists for a viewer, most recently
// updated first. A block in either direction hides the owner's playlists.
func (s *PlaylistService) GetUserPlaylists(viewerId, ownerId int64, params pagination.Params) (*PlaylistList, error) {
	if err := params.Validate(); err != nil {
		return nil, errno.RequestErr.WithMessage(err.Error())
	}
	params = params.Normalize()

	exists, err := client.UserExists(s.ctx, ownerId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("user not found")
	}
	if viewerId > 0 && viewerId != ownerId {
		blocked, err := client.IsBlockedEither(s.ctx, viewerId, ownerId)
		if err != nil {
			return nil, err
		}
		if blocked {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
	}

	rows, total, err := db.GetUserPlaylists(s.ctx, ownerId, params.Offset(), params.Limit())
	if err != nil {
		return nil, err
	}
	entries := make([]*PlaylistEntry, 0, len(rows))
	for _, row := range rows {
		playlist := row.Playlist
		entries = append(entries, &PlaylistEntry{Playlist: &playlist, VideoCount: row.VideoCount})
	}
	return &PlaylistList{Playlists: entries, Meta: pagination.NewMeta(total, params)}, nil
}

func (s *PlaylistService) ownedPlaylist(playlistId, userId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylistInfo(s.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("playlist not found")
		}
		return nil, err
	}
	if playlist.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("not the playlist owner")
	}
	return playlist, nil
}
