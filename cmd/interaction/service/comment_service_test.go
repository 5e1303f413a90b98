package service

import (
	"testing"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

func comment(id, parentId int64) *model.Comment {
	return &model.Comment{CommentId: id, VideoId: 1, UserId: 100, ParentId: parentId}
}

func TestBuildCommentForestNesting(t *testing.T) {
	// c1 and c4 are roots, c2 replies to c1, c3 replies to c2.
	comments := []*model.Comment{
		comment(4, 0),
		comment(3, 2),
		comment(2, 1),
		comment(1, 0),
	}

	roots := BuildCommentForest(comments)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].CommentId != 4 || roots[1].CommentId != 1 {
		t.Fatalf("root order not preserved: %d, %d", roots[0].CommentId, roots[1].CommentId)
	}

	c1 := roots[1]
	if len(c1.Replies) != 1 || c1.Replies[0].CommentId != 2 {
		t.Fatalf("expected c2 under c1, got %+v", c1.Replies)
	}
	c2 := c1.Replies[0]
	if len(c2.Replies) != 1 || c2.Replies[0].CommentId != 3 {
		t.Fatalf("expected c3 under c2, got %+v", c2.Replies)
	}
	if CountForestNodes(roots) != 4 {
		t.Fatalf("expected 4 nodes, got %d", CountForestNodes(roots))
	}
}

func TestBuildCommentForestDropsOrphans(t *testing.T) {
	// Parent 99 was deleted; its reply must not surface as a root.
	comments := []*model.Comment{
		comment(1, 0),
		comment(2, 99),
	}

	roots := BuildCommentForest(comments)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].CommentId != 1 {
		t.Fatalf("unexpected root %d", roots[0].CommentId)
	}
	if CountForestNodes(roots) != 1 {
		t.Fatalf("orphan should be invisible, counted %d nodes", CountForestNodes(roots))
	}
}

func TestBuildCommentForestRepliesNeverNil(t *testing.T) {
	roots := BuildCommentForest([]*model.Comment{comment(1, 0)})
	if roots[0].Replies == nil {
		t.Fatal("Replies must be an empty slice, not nil")
	}
	if len(roots[0].Replies) != 0 {
		t.Fatalf("expected no replies, got %d", len(roots[0].Replies))
	}
}

func TestBuildCommentForestEmpty(t *testing.T) {
	roots := BuildCommentForest(nil)
	if roots == nil || len(roots) != 0 {
		t.Fatalf("expected empty forest, got %v", roots)
	}
}

func TestValidateCommentContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "nice video", false},
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"too long", repeatRune('a', 501), true},
		{"exactly max", repeatRune('a', 500), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCommentContent(tc.content)
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				e := errno.ConvertErr(err)
				if e.ErrCode != errno.ParamErrCode {
					t.Fatalf("expected param error code, got %d", e.ErrCode)
				}
			}
		})
	}
}

func repeatRune(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}
