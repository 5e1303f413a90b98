package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/interaction/infras/client"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// CommentNode is one entry of the reply forest. Replies is always non-nil so
// clients see an empty array rather than a missing field.
type CommentNode struct {
	*model.Comment
	Owner   *model.UserSummary `json:"owner,omitempty"`
	Replies []*CommentNode     `json:"replies"`
}

// BuildCommentForest turns a flat, display-ordered comment list into root
// nodes with nested replies. Two passes: wrap every comment in a node, then
// hang each child under its parent. A child whose parent is missing (deleted
// upstream) is dropped rather than promoted to root. Parents always precede
// children in time and parent ids are fixed at creation, so no cycle check
// is needed.
func BuildCommentForest(comments []*model.Comment) []*CommentNode {
	nodes := make(map[int64]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.CommentId] = &CommentNode{Comment: c, Replies: make([]*CommentNode, 0)}
	}

	roots := make([]*CommentNode, 0)
	for _, c := range comments {
		node := nodes[c.CommentId]
		if c.ParentId == 0 {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[c.ParentId]; ok {
			parent.Replies = append(parent.Replies, node)
		}
		// orphaned reply: parent no longer exists, keep it invisible
	}
	return roots
}

// CountForestNodes walks the forest and counts every reachable node.
func CountForestNodes(roots []*CommentNode) int {
	total := 0
	var walk func(nodes []*CommentNode)
	walk = func(nodes []*CommentNode) {
		for _, n := range nodes {
			total++
			walk(n.Replies)
		}
	}
	walk(roots)
	return total
}

// GetVideoComments returns the reply forest for a video, newest roots first,
// with owner profiles attached.
func (service *CommentService) GetVideoComments(ctx context.Context, videoId int64) ([]*CommentNode, error) {
	exist, err := client.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "client.VideoExists failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	comments, err := db.GetVideoComments(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "db.GetVideoComments failed")
	}

	roots := BuildCommentForest(comments)

	ownerIds := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserId]; !ok {
			seen[c.UserId] = struct{}{}
			ownerIds = append(ownerIds, c.UserId)
		}
	}
	summaries, err := client.GetUserSummaries(ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(err, "client.GetUserSummaries failed")
	}
	var attach func(nodes []*CommentNode)
	attach = func(nodes []*CommentNode) {
		for _, n := range nodes {
			n.Owner = summaries[n.UserId]
			attach(n.Replies)
		}
	}
	attach(roots)

	return roots, nil
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("comment too long, maximum 500 characters allowed")
	}
	return nil
}

// AddComment creates a root comment or a reply. A reply's parent must exist
// and sit on the same video.
func (service *CommentService) AddComment(ctx context.Context, userId, videoId int64, content string, parentId int64) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	exist, err := client.VideoExists(ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "client.VideoExists failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("video not found")
	}

	if parentId != 0 {
		parent, err := db.GetCommentInfo(ctx, parentId)
		if err != nil {
			if db.IsRecordNotFound(err) {
				return nil, errno.NotFoundErr.WithMessage("parent comment not found")
			}
			return nil, errors.WithMessage(err, "db.GetCommentInfo failed")
		}
		if parent.VideoId != videoId {
			return nil, errno.NotFoundErr.WithMessage("parent comment is not on this video")
		}
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		ParentId:  parentId,
		Content:   strings.TrimSpace(content),
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "db.CreateComment failed")
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(ctx context.Context, userId, commentId int64, content string) (*model.Comment, error) {
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("comment not found")
		}
		return nil, errors.WithMessage(err, "db.GetCommentInfo failed")
	}
	if comment.UserId != userId {
		return nil, errno.ForbiddenErr.WithMessage("not the owner of this comment")
	}
	if err := db.UpdateCommentContent(ctx, commentId, strings.TrimSpace(content)); err != nil {
		return nil, errors.WithMessage(err, "db.UpdateCommentContent failed")
	}
	comment.Content = strings.TrimSpace(content)
	return comment, nil
}

// DeleteComment removes the comment row only. Replies become orphans and the
// forest builder keeps them out of view, so no cascading delete is needed.
func (service *CommentService) DeleteComment(ctx context.Context, userId, commentId int64) error {
	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.NotFoundErr.WithMessage("comment not found")
		}
		return errors.WithMessage(err, "db.GetCommentInfo failed")
	}
	if comment.UserId != userId {
		return errno.ForbiddenErr.WithMessage("not the owner of this comment")
	}
	if err := db.DeleteComment(ctx, commentId); err != nil {
		return errors.WithMessage(err, "db.DeleteComment failed")
	}
	return nil
}
