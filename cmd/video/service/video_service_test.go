package service

import (
	"testing"

	"vidtube.com/cmd/model"
)

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want string
	}{
		{"lowercase and trim", []string{" Go ", "Backend"}, "go,backend"},
		{"dedupe", []string{"go", "GO", "go"}, "go"},
		{"drops empties", []string{"", "  ", "music"}, "music"},
		{"empty input", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeTags(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOrderByIds(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 1},
		{VideoId: 2},
		{VideoId: 3},
	}

	ordered := orderByIds(videos, []int64{3, 1, 2})
	if len(ordered) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(ordered))
	}
	if ordered[0].VideoId != 3 || ordered[1].VideoId != 1 || ordered[2].VideoId != 2 {
		t.Fatalf("order not applied: %v", []int64{ordered[0].VideoId, ordered[1].VideoId, ordered[2].VideoId})
	}
}

func TestOrderByIdsSkipsMissing(t *testing.T) {
	// Video 5 was deleted after the like was recorded.
	videos := []*model.Video{{VideoId: 1}}
	ordered := orderByIds(videos, []int64{5, 1})
	if len(ordered) != 1 || ordered[0].VideoId != 1 {
		t.Fatalf("expected only video 1, got %v", ordered)
	}
}

func TestSortOrderClause(t *testing.T) {
	for _, key := range []string{"latest", "oldest", "views", "likes", "comments", "title"} {
		if _, ok := SortOrderClause(key); !ok {
			t.Fatalf("sort key %q should be accepted", key)
		}
	}
	if clause, ok := SortOrderClause(""); !ok || clause != "created_at DESC, video_id DESC" {
		t.Fatalf("empty key should default to latest, got %q (%v)", clause, ok)
	}
	for _, key := range []string{"views; DROP TABLE videos", "rand()", "unknown"} {
		if _, ok := SortOrderClause(key); ok {
			t.Fatalf("sort key %q must be rejected", key)
		}
	}
}
