package service

import (
	"testing"

	"vidtube.com/cmd/relation/dal/db"
)

func TestIntersectIds(t *testing.T) {
	cases := []struct {
		name string
		a, b []int64
		want []int64
	}{
		{"overlap", []int64{3, 1, 2}, []int64{2, 3, 5}, []int64{2, 3}},
		{"disjoint", []int64{1, 2}, []int64{3, 4}, []int64{}},
		{"empty left", nil, []int64{1}, []int64{}},
		{"empty right", []int64{1}, nil, []int64{}},
		{"duplicates in input", []int64{1, 1, 2}, []int64{2, 2, 1}, []int64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IntersectIds(tc.a, tc.b)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestIntersectIdsSymmetric(t *testing.T) {
	a := []int64{5, 9, 1, 7}
	b := []int64{7, 2, 5}
	ab := IntersectIds(a, b)
	ba := IntersectIds(b, a)
	if len(ab) != len(ba) {
		t.Fatalf("intersection not symmetric: %v vs %v", ab, ba)
	}
	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("intersection not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestMergeIds(t *testing.T) {
	got := MergeIds([]int64{1, 2, 2}, []int64{2, 3})
	seen := make(map[int64]bool)
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate %d in %v", id, got)
		}
		seen[id] = true
	}
	if len(got) != 3 || !seen[1] || !seen[2] || !seen[3] {
		t.Fatalf("expected union {1,2,3}, got %v", got)
	}
}

func TestReverseMonthlyCounts(t *testing.T) {
	rows := []*db.MonthlySubscriberCount{
		{Year: 2026, Month: 8, Count: 30},
		{Year: 2026, Month: 7, Count: 20},
		{Year: 2026, Month: 6, Count: 10},
	}
	ReverseMonthlyCounts(rows)
	if rows[0].Month != 6 || rows[1].Month != 7 || rows[2].Month != 8 {
		t.Fatalf("expected oldest first, got %+v", rows)
	}

	// Even length and single element stay well formed.
	single := []*db.MonthlySubscriberCount{{Year: 2026, Month: 1, Count: 1}}
	ReverseMonthlyCounts(single)
	if single[0].Month != 1 {
		t.Fatal("single element must be untouched")
	}
}
