package service

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/pagination"
)

func setupSubscriptionStore(t *testing.T) {
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
	if err := gdb.AutoMigrate(&model.Subscription{}, &model.User{}, &model.UserBlock{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	oldRelation, oldUser := db.DB, userdb.DB
	db.DB = gdb
	userdb.DB = gdb
	t.Cleanup(func() {
		db.DB = oldRelation
		userdb.DB = oldUser
		sqlDB.Close()
	})
}

func seedUser(t *testing.T, userId int64, name string) {
	t.Helper()
	if err := userdb.DB.Create(&model.User{UserId: userId, UserName: name}).Error; err != nil {
		t.Fatalf("seed user %d: %v", userId, err)
	}
}

func TestToggleSubscriptionPairing(t *testing.T) {
	setupSubscriptionStore(t)
	ctx := context.Background()
	seedUser(t, 1, "channel")
	seedUser(t, 2, "viewer")

	service := NewSubscriptionService(ctx)

	state, err := service.ToggleSubscription(ctx, 2, 1)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if state != ToggleStateAdded {
		t.Fatalf("first toggle state = %q, want %q", state, ToggleStateAdded)
	}

	state, err = service.ToggleSubscription(ctx, 2, 1)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if state != ToggleStateRemoved {
		t.Fatalf("second toggle state = %q, want %q", state, ToggleStateRemoved)
	}

	state, err = service.ToggleSubscription(ctx, 2, 1)
	if err != nil || state != ToggleStateAdded {
		t.Fatalf("third toggle: state=%q err=%v", state, err)
	}
	subscribed, err := db.IsSubscribed(ctx, 2, 1)
	if err != nil || !subscribed {
		t.Fatalf("after odd toggles: subscribed=%v err=%v", subscribed, err)
	}
}

func TestToggleSubscriptionSelfRejected(t *testing.T) {
	setupSubscriptionStore(t)
	ctx := context.Background()
	seedUser(t, 1, "channel")

	if _, err := NewSubscriptionService(ctx).ToggleSubscription(ctx, 1, 1); err == nil {
		t.Fatal("self-subscription should be rejected")
	}
}

func TestGetSubscribersHidesBlocked(t *testing.T) {
	setupSubscriptionStore(t)
	ctx := context.Background()
	seedUser(t, 1, "channel")
	seedUser(t, 2, "fan")
	seedUser(t, 3, "troll")

	service := NewSubscriptionService(ctx)
	for _, subscriberId := range []int64{2, 3} {
		if _, err := service.ToggleSubscription(ctx, subscriberId, 1); err != nil {
			t.Fatalf("subscribe %d: %v", subscriberId, err)
		}
	}
	if _, err := userdb.CreateBlock(ctx, 1, 3); err != nil {
		t.Fatalf("seed block: %v", err)
	}

	list, err := service.GetSubscribers(ctx, 1, pagination.Params{PageNum: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("GetSubscribers: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
	if len(list.Subscribers) != 1 || list.Subscribers[0].UserId != 2 {
		t.Fatalf("unexpected subscribers: %+v", list.Subscribers)
	}

	// the edge itself survives the block, only visibility is suppressed
	subscribed, err := db.IsSubscribed(ctx, 3, 1)
	if err != nil || !subscribed {
		t.Fatalf("blocked subscriber edge: subscribed=%v err=%v", subscribed, err)
	}
}
