package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func setupLikeStore(t *testing.T) {
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
	if err := gdb.AutoMigrate(&model.Like{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := db.DB
	db.DB = gdb
	t.Cleanup(func() {
		db.DB = old
		sqlDB.Close()
	})
}

func TestToggleLikePairing(t *testing.T) {
	setupLikeStore(t)
	ctx := context.Background()
	if err := db.DB.Create(&model.Comment{CommentId: 300, VideoId: 1, UserId: 2, Content: "nice edit"}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	service := NewLikeService(ctx)

	state, err := service.ToggleLike(ctx, 7, constants.LikeTargetComment, 300)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if state != ToggleStateAdded {
		t.Fatalf("first toggle state = %q, want %q", state, ToggleStateAdded)
	}
	liked, err := service.IsLiked(ctx, 7, constants.LikeTargetComment, 300)
	if err != nil || !liked {
		t.Fatalf("after add: liked=%v err=%v", liked, err)
	}

	state, err = service.ToggleLike(ctx, 7, constants.LikeTargetComment, 300)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if state != ToggleStateRemoved {
		t.Fatalf("second toggle state = %q, want %q", state, ToggleStateRemoved)
	}
	liked, err = service.IsLiked(ctx, 7, constants.LikeTargetComment, 300)
	if err != nil || liked {
		t.Fatalf("after remove: liked=%v err=%v", liked, err)
	}

	// an even number of toggles nets out to zero edges, an odd number to one
	state, err = service.ToggleLike(ctx, 7, constants.LikeTargetComment, 300)
	if err != nil || state != ToggleStateAdded {
		t.Fatalf("third toggle: state=%q err=%v", state, err)
	}
	count, err := service.GetLikeCount(ctx, constants.LikeTargetComment, 300)
	if err != nil {
		t.Fatalf("GetLikeCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("like count = %d, want 1", count)
	}
}

func TestToggleLikeMissingTarget(t *testing.T) {
	setupLikeStore(t)
	ctx := context.Background()

	if _, err := NewLikeService(ctx).ToggleLike(ctx, 7, constants.LikeTargetComment, 999); err == nil {
		t.Fatal("toggle on absent comment should fail")
	}
}
