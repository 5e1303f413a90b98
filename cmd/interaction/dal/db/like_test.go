package db

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
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
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(&model.Like{}, &model.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := DB
	DB = gdb
	t.Cleanup(func() {
		DB = old
		sqlDB.Close()
	})
}

func TestCreateLikeDuplicateReconciled(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	created, err := CreateLike(ctx, 7, constants.LikeTargetVideo, 100)
	if err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}

	// a racing toggle that lost the insert must see no error and no new edge
	created, err = CreateLike(ctx, 7, constants.LikeTargetVideo, 100)
	if err != nil {
		t.Fatalf("duplicate insert errored: %v", err)
	}
	if created {
		t.Fatal("duplicate insert reported created=true")
	}

	count, err := GetLikeCount(ctx, constants.LikeTargetVideo, 100)
	if err != nil {
		t.Fatalf("GetLikeCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("edge count = %d, want 1", count)
	}
}

func TestDeleteLikeIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	deleted, err := DeleteLike(ctx, 7, constants.LikeTargetVideo, 100)
	if err != nil {
		t.Fatalf("delete of absent edge errored: %v", err)
	}
	if deleted {
		t.Fatal("delete of absent edge reported deleted=true")
	}

	if _, err := CreateLike(ctx, 7, constants.LikeTargetVideo, 100); err != nil {
		t.Fatalf("CreateLike: %v", err)
	}
	deleted, err = DeleteLike(ctx, 7, constants.LikeTargetVideo, 100)
	if err != nil || !deleted {
		t.Fatalf("delete of existing edge: deleted=%v err=%v", deleted, err)
	}
	deleted, err = DeleteLike(ctx, 7, constants.LikeTargetVideo, 100)
	if err != nil || deleted {
		t.Fatalf("repeat delete: deleted=%v err=%v", deleted, err)
	}
}

func TestLikeEdgesKeyedByTargetKind(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	// same (user, id) pair under distinct kinds is two independent edges
	if _, err := CreateLike(ctx, 7, constants.LikeTargetVideo, 100); err != nil {
		t.Fatalf("video like: %v", err)
	}
	created, err := CreateLike(ctx, 7, constants.LikeTargetComment, 100)
	if err != nil || !created {
		t.Fatalf("comment like: created=%v err=%v", created, err)
	}

	count, err := GetLikeCount(ctx, constants.LikeTargetVideo, 100)
	if err != nil {
		t.Fatalf("GetLikeCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("video edge count = %d, want 1", count)
	}
}
