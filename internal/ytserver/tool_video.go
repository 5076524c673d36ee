package ytserver

import (
	"context"
	"encoding/json"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type VideoDetailInput struct {
	VideoID string `json:"video_id" jsonschema:"YouTube video ID (11 chars)"`
	GL      string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL      string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

type VideoCommentsInput struct {
	VideoID      string `json:"video_id" jsonschema:"YouTube video ID (11 chars)"`
	SortBy       string `json:"sort_by,omitempty" jsonschema:"TOP_COMMENTS or NEWEST_FIRST"`
	Continuation string `json:"continuation,omitempty" jsonschema:"Continuation token from a previous page"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

type VideoRepliesInput struct {
	Continuation string `json:"continuation" jsonschema:"Reply continuation token taken from the parent comment"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

func registerVideoTools(server *mcp.Server, client *ytscraper.Client, cache *toolutil.Cache) int {
	addTool(server, cache, "youtube_video_detail",
		"Video metadata: title, author, stats, thumbnails, description.",
		func(in VideoDetailInput) (call, error) { return buildVideoDetail(client, in) })
	addTool(server, cache, "youtube_video_comments",
		"One page of top-level comments for a video, with a continuation token for the next page.",
		func(in VideoCommentsInput) (call, error) { return buildVideoComments(client, in) })
	addTool(server, cache, "youtube_video_replies",
		"Replies to a comment. Requires the reply continuation token found on the parent comment.",
		func(in VideoRepliesInput) (call, error) { return buildVideoReplies(client, in) })
	return 3
}

func buildVideoDetail(client *ytscraper.Client, in VideoDetailInput) (call, error) {
	if err := required("video_id", in.VideoID); err != nil {
		return call{}, err
	}
	p := ytscraper.VideoDetailParams{VideoID: in.VideoID, Locale: locale(in.GL, in.HL)}
	return call{
		path:  ytscraper.PathVideoDetail,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Video().Detail(ctx, p) },
	}, nil
}

func buildVideoComments(client *ytscraper.Client, in VideoCommentsInput) (call, error) {
	if err := required("video_id", in.VideoID); err != nil {
		return call{}, err
	}
	p := ytscraper.VideoCommentsParams{
		VideoID:      in.VideoID,
		SortBy:       toolutil.OptAs[ytscraper.CommentSort](in.SortBy),
		Continuation: toolutil.Opt(in.Continuation),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathVideoComments,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Video().Comments(ctx, p) },
	}, nil
}

func buildVideoReplies(client *ytscraper.Client, in VideoRepliesInput) (call, error) {
	if err := required("continuation", in.Continuation); err != nil {
		return call{}, err
	}
	p := ytscraper.VideoReplyCommentsParams{Continuation: in.Continuation, Locale: locale(in.GL, in.HL)}
	return call{
		path:  ytscraper.PathVideoReplyComments,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Video().ReplyComments(ctx, p) },
	}, nil
}
