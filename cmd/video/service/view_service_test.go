package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
)

func setupViewStore(t *testing.T) {
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
	if err := gdb.AutoMigrate(&model.Video{}, &model.VideoView{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = old
		sqlDB.Close()
	})
}

func TestRecordViewCountsOnce(t *testing.T) {
	setupViewStore(t)
	ctx := context.Background()
	if err := db.InsertVideo(ctx, &model.Video{VideoId: 100, UserId: 1, Title: "launch day", IsPublished: true}); err != nil {
		t.Fatalf("seed video: %v", err)
	}

	service := NewViewService(ctx)

	if err := service.RecordView(7, 100); err != nil {
		t.Fatalf("first view: %v", err)
	}
	// replays of the same viewer never move the counter again
	if err := service.RecordView(7, 100); err != nil {
		t.Fatalf("repeat view: %v", err)
	}

	video, err := db.GetVideoInfo(ctx, 100)
	if err != nil {
		t.Fatalf("GetVideoInfo: %v", err)
	}
	if video.VisitCount != 1 {
		t.Fatalf("visit count = %d, want 1", video.VisitCount)
	}

	if err := service.RecordView(8, 100); err != nil {
		t.Fatalf("second viewer: %v", err)
	}
	video, err = db.GetVideoInfo(ctx, 100)
	if err != nil {
		t.Fatalf("GetVideoInfo: %v", err)
	}
	if video.VisitCount != 2 {
		t.Fatalf("visit count = %d, want 2", video.VisitCount)
	}
}

func TestUpdateWatchProgressRejectsNegative(t *testing.T) {
	setupViewStore(t)

	if err := NewViewService(context.Background()).UpdateWatchProgress(7, 100, -5); err == nil {
		t.Fatal("negative progress should be rejected")
	}
}
