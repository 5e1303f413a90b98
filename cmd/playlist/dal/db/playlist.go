package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrap(err, "CreatePlaylist failed")
	}
	return nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func UpdatePlaylistMeta(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylistMeta failed, playlist_id=%d", playlistId)
	}
	return nil
}

// DeletePlaylist removes the playlist together with its membership entries.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed, playlist_id=%d", playlistId)
	}
	return nil
}

// AddVideo inserts the membership edge and lets the unique pair index give
// it set semantics: a duplicate key is reported as added=false, never as an
// error.
func AddVideo(ctx context.Context, playlistId, videoId int64) (added bool, err error) {
	entry := &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
	}
	if err := DB.WithContext(ctx).Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrap(err, "AddVideo failed")
	}
	return true, nil
}

// RemoveVideo drops the edge if present; removing an absent video is a no-op.
func RemoveVideo(ctx context.Context, playlistId, videoId int64) (removed bool, err error) {
	res := DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "RemoveVideo failed")
	}
	return res.RowsAffected > 0, nil
}

// GetPlaylistVideoIds lists member video ids in the order they were added.
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	ids := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("created_at ASC, playlist_video_id ASC").
		Select("video_id").Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

const videoCountSubquery = "(SELECT COUNT(*) FROM playlist_videos WHERE playlist_videos.playlist_id = playlists.playlist_id) AS video_count"

type PlaylistStatsRow struct {
	model.Playlist
	VideoCount int64 `json:"video_count"`
}

// GetUserPlaylists pages an owner's playlists with their member counts, most
// recently updated first.
func GetUserPlaylists(ctx context.Context, userId int64, offset, limit int) ([]*PlaylistStatsRow, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetUserPlaylists count failed")
	}

	rows := make([]*PlaylistStatsRow, 0)
	if err := base.
		Select("playlists.*, " + videoCountSubquery).
		Order("updated_at DESC, playlist_id DESC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "GetUserPlaylists failed")
	}
	return rows, total, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
