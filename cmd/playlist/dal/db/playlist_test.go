package db

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sqlite: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(&model.Playlist{}, &model.PlaylistVideo{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := DB
	DB = gdb
	t.Cleanup(func() {
		DB = old
		sqlDB.Close()
	})
}

func TestAddVideoSetSemantics(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	added, err := AddVideo(ctx, 1, 100)
	if err != nil || !added {
		t.Fatalf("first add: added=%v err=%v", added, err)
	}

	added, err = AddVideo(ctx, 1, 100)
	if err != nil {
		t.Fatalf("repeat add errored: %v", err)
	}
	if added {
		t.Fatal("repeat add reported added=true")
	}

	ids, err := GetPlaylistVideoIds(ctx, 1)
	if err != nil {
		t.Fatalf("GetPlaylistVideoIds: %v", err)
	}
	if len(ids) != 1 || ids[0] != 100 {
		t.Fatalf("member ids = %v, want [100]", ids)
	}
}

func TestRemoveVideoIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	removed, err := RemoveVideo(ctx, 1, 100)
	if err != nil || removed {
		t.Fatalf("remove of absent video: removed=%v err=%v", removed, err)
	}

	if _, err := AddVideo(ctx, 1, 100); err != nil {
		t.Fatalf("AddVideo: %v", err)
	}
	removed, err = RemoveVideo(ctx, 1, 100)
	if err != nil || !removed {
		t.Fatalf("remove of member: removed=%v err=%v", removed, err)
	}
	removed, err = RemoveVideo(ctx, 1, 100)
	if err != nil || removed {
		t.Fatalf("repeat remove: removed=%v err=%v", removed, err)
	}
}

func TestGetPlaylistVideoIdsKeepsAddOrder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for _, videoId := range []int64{30, 10, 20} {
		if _, err := AddVideo(ctx, 1, videoId); err != nil {
			t.Fatalf("add %d: %v", videoId, err)
		}
	}

	ids, err := GetPlaylistVideoIds(ctx, 1)
	if err != nil {
		t.Fatalf("GetPlaylistVideoIds: %v", err)
	}
	if len(ids) != 3 || ids[0] != 30 || ids[1] != 10 || ids[2] != 20 {
		t.Fatalf("member ids = %v, want [30 10 20]", ids)
	}
}

func TestDeletePlaylistRemovesEntries(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := CreatePlaylist(ctx, &model.Playlist{PlaylistId: 1, UserId: 7, Name: "road trips", Description: "van life"}); err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if _, err := AddVideo(ctx, 1, 100); err != nil {
		t.Fatalf("AddVideo: %v", err)
	}

	if err := DeletePlaylist(ctx, 1); err != nil {
		t.Fatalf("DeletePlaylist: %v", err)
	}

	if _, err := GetPlaylistInfo(ctx, 1); !IsRecordNotFound(err) {
		t.Fatalf("playlist row survived delete: %v", err)
	}
	ids, err := GetPlaylistVideoIds(ctx, 1)
	if err != nil {
		t.Fatalf("GetPlaylistVideoIds: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("membership rows survived delete: %v", ids)
	}
}

func TestGetUserPlaylistsWithCounts(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	if err := CreatePlaylist(ctx, &model.Playlist{PlaylistId: 1, UserId: 7, Name: "cooking", Description: "weeknight dinners"}); err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if err := CreatePlaylist(ctx, &model.Playlist{PlaylistId: 2, UserId: 7, Name: "empty", Description: "placeholder"}); err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	for _, videoId := range []int64{100, 101} {
		if _, err := AddVideo(ctx, 1, videoId); err != nil {
			t.Fatalf("add %d: %v", videoId, err)
		}
	}

	rows, total, err := GetUserPlaylists(ctx, 7, 0, 10)
	if err != nil {
		t.Fatalf("GetUserPlaylists: %v", err)
	}
	if total != 2 || len(rows) != 2 {
		t.Fatalf("got %d rows (total %d), want 2", len(rows), total)
	}
	counts := map[int64]int64{}
	for _, row := range rows {
		counts[row.PlaylistId] = row.VideoCount
	}
	if counts[1] != 2 || counts[2] != 0 {
		t.Fatalf("member counts = %v, want map[1:2 2:0]", counts)
	}
}
