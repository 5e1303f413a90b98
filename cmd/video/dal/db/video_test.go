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
	if err := gdb.AutoMigrate(&model.Video{}, &model.VideoView{}, &model.Like{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := DB
	DB = gdb
	t.Cleanup(func() {
		DB = old
		sqlDB.Close()
	})
}

func seedVideo(t *testing.T, video *model.Video) {
	t.Helper()
	if err := InsertVideo(context.Background(), video); err != nil {
		t.Fatalf("seed video %d: %v", video.VideoId, err)
	}
}

func TestGetTrendingVideosOnlyPublic(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedVideo(t, &model.Video{VideoId: 1, UserId: 1, Title: "public hit", IsPublished: true, VisitCount: 50})
	seedVideo(t, &model.Video{VideoId: 2, UserId: 1, Title: "family archive", IsPublished: true, IsPrivate: true, VisitCount: 900})
	seedVideo(t, &model.Video{VideoId: 3, UserId: 1, Title: "still a draft", IsPublished: false, VisitCount: 700})
	seedVideo(t, &model.Video{VideoId: 4, UserId: 1, Title: "taken down", IsPublished: true, IsDeleted: true, VisitCount: 800})

	rows, err := GetTrendingVideos(ctx, 10)
	if err != nil {
		t.Fatalf("GetTrendingVideos: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d videos, want 1: %+v", len(rows), rows)
	}
	if rows[0].VideoId != 1 {
		t.Fatalf("got video %d, want 1", rows[0].VideoId)
	}
}

func TestGetTrendingVideosOrderedByViews(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedVideo(t, &model.Video{VideoId: 1, UserId: 1, Title: "slow burner", IsPublished: true, VisitCount: 10})
	seedVideo(t, &model.Video{VideoId: 2, UserId: 2, Title: "viral", IsPublished: true, VisitCount: 500})

	rows, err := GetTrendingVideos(ctx, 10)
	if err != nil {
		t.Fatalf("GetTrendingVideos: %v", err)
	}
	if len(rows) != 2 || rows[0].VideoId != 2 || rows[1].VideoId != 1 {
		t.Fatalf("unexpected order: %+v", rows)
	}
}

func TestSearchVideosOnlyPublic(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedVideo(t, &model.Video{VideoId: 1, UserId: 1, Title: "city marathon recap", IsPublished: true})
	seedVideo(t, &model.Video{VideoId: 2, UserId: 1, Title: "marathon training diary", IsPublished: true, IsPrivate: true})
	seedVideo(t, &model.Video{VideoId: 3, UserId: 1, Title: "marathon draft cut", IsPublished: false})

	videos, total, err := SearchVideos(ctx, "marathon", nil, 0, 0, 0, 10)
	if err != nil {
		t.Fatalf("SearchVideos: %v", err)
	}
	if total != 1 || len(videos) != 1 {
		t.Fatalf("got %d videos (total %d), want 1", len(videos), total)
	}
	if videos[0].VideoId != 1 {
		t.Fatalf("got video %d, want 1", videos[0].VideoId)
	}
}

func TestCreateVideoViewDuplicateReconciled(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	created, err := CreateVideoView(ctx, &model.VideoView{VideoViewId: 1, UserId: 7, VideoId: 100})
	if err != nil || !created {
		t.Fatalf("first view: created=%v err=%v", created, err)
	}

	// a concurrent repeat of the same (user, video) pair must lose quietly
	created, err = CreateVideoView(ctx, &model.VideoView{VideoViewId: 2, UserId: 7, VideoId: 100})
	if err != nil {
		t.Fatalf("duplicate view errored: %v", err)
	}
	if created {
		t.Fatal("duplicate view reported created=true")
	}

	viewers, err := CountViewersForVideo(ctx, 100)
	if err != nil {
		t.Fatalf("CountViewersForVideo: %v", err)
	}
	if viewers != 1 {
		t.Fatalf("viewer count = %d, want 1", viewers)
	}
}
