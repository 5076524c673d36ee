package ytscraper

import (
	"context"
	"encoding/json"
)

const (
	PathVideoDetail        = "/api/v1/video/detail"
	PathVideoComments      = "/api/v1/video/comments"
	PathVideoReplyComments = "/api/v1/video/reply-comments"
)

// CommentSort orders video comments.
type CommentSort string

const (
	SortTopComments CommentSort = "TOP_COMMENTS"
	SortNewestFirst CommentSort = "NEWEST_FIRST"
)

type VideoDetailParams struct {
	VideoID string
	Locale
}

func (p VideoDetailParams) Query() Query {
	var q Query
	q.add("videoId", p.VideoID)
	p.Locale.addTo(&q)
	return q
}

type VideoCommentsParams struct {
	VideoID      string
	SortBy       *CommentSort
	Continuation *string
	Locale
}

func (p VideoCommentsParams) Query() Query {
	var q Query
	q.add("videoId", p.VideoID)
	addOptional(&q, "sortBy", p.SortBy)
	addOptional(&q, "continuation", p.Continuation)
	p.Locale.addTo(&q)
	return q
}

// VideoReplyCommentsParams identifies a comment thread by the continuation
// token found on the parent comment.
type VideoReplyCommentsParams struct {
	Continuation string
	Locale
}

func (p VideoReplyCommentsParams) Query() Query {
	var q Query
	q.add("continuation", p.Continuation)
	p.Locale.addTo(&q)
	return q
}

// VideoService covers single-video endpoints.
type VideoService struct {
	t *Transport
}

// Detail returns video metadata.
func (s *VideoService) Detail(ctx context.Context, p VideoDetailParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathVideoDetail, p)
}

// Comments returns one page of top-level comments.
func (s *VideoService) Comments(ctx context.Context, p VideoCommentsParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathVideoComments, p)
}

// ReplyComments returns replies to one comment.
func (s *VideoService) ReplyComments(ctx context.Context, p VideoReplyCommentsParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathVideoReplyComments, p)
}
