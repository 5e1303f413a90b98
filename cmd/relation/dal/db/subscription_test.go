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
	if err := gdb.AutoMigrate(&model.Subscription{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	old := DB
	DB = gdb
	t.Cleanup(func() {
		DB = old
		sqlDB.Close()
	})
}

func TestCreateSubscriptionDuplicateReconciled(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	created, err := CreateSubscription(ctx, 2, 1)
	if err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}

	created, err = CreateSubscription(ctx, 2, 1)
	if err != nil {
		t.Fatalf("duplicate insert errored: %v", err)
	}
	if created {
		t.Fatal("duplicate insert reported created=true")
	}

	count, err := GetSubscriberCount(ctx, 1)
	if err != nil {
		t.Fatalf("GetSubscriberCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("edge count = %d, want 1", count)
	}
}

func TestDeleteSubscriptionIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	deleted, err := DeleteSubscription(ctx, 2, 1)
	if err != nil || deleted {
		t.Fatalf("delete of absent edge: deleted=%v err=%v", deleted, err)
	}

	if _, err := CreateSubscription(ctx, 2, 1); err != nil {
		t.Fatalf("CreateSubscription: %v", err)
	}
	deleted, err = DeleteSubscription(ctx, 2, 1)
	if err != nil || !deleted {
		t.Fatalf("delete of existing edge: deleted=%v err=%v", deleted, err)
	}
	deleted, err = DeleteSubscription(ctx, 2, 1)
	if err != nil || deleted {
		t.Fatalf("repeat delete: deleted=%v err=%v", deleted, err)
	}
}

func TestGetSubscribersExcludesIds(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	for _, subscriberId := range []int64{10, 11, 12} {
		if _, err := CreateSubscription(ctx, subscriberId, 1); err != nil {
			t.Fatalf("seed subscription %d: %v", subscriberId, err)
		}
	}

	subs, total, err := GetSubscribers(ctx, 1, []int64{11}, 0, 10)
	if err != nil {
		t.Fatalf("GetSubscribers: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, sub := range subs {
		if sub.SubscriberId == 11 {
			t.Fatal("excluded subscriber returned")
		}
	}
}
