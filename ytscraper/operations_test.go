package ytscraper

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type operationCase struct {
	name string
	path string
	call func(ctx context.Context, c *Client, full bool) (json.RawMessage, error)
	min  string // raw query with only required fields
	full string // raw query with every field set
}

var loc = Locale{GL: String("US"), HL: String("en")}

func pick[T any](full bool, v T) *T {
	if !full {
		return nil
	}
	return &v
}

func locale(full bool) Locale {
	if !full {
		return Locale{}
	}
	return loc
}

func operationCases() []operationCase {
	channelTab := func(path string, fn func(*ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error)) operationCase {
		return operationCase{
			name: path,
			path: path,
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return fn(c.Channel())(ctx, ChannelPageParams{ChannelID: "UC1", Continuation: pick(full, "TOK"), Locale: locale(full)})
			},
			min:  "channelId=UC1",
			full: "channelId=UC1&continuation=TOK&gl=US&hl=en",
		}
	}

	return []operationCase{
		{
			name: "explore search",
			path: "/api/v1/search",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Explore().Search(ctx, SearchParams{
					Keyword:      "lofi",
					Locale:       locale(full),
					UploadDate:   pick(full, UploadThisWeek),
					Type:         pick(full, SearchMovie),
					Continuation: pick(full, "NEXT"),
				})
			},
			min:  "keyword=lofi",
			full: "keyword=lofi&gl=US&hl=en&uploadDate=THIS_WEEK&type=MOVIE&continuation=NEXT",
		},
		{
			name: "explore suggestions",
			path: "/api/v1/suggestions",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Explore().Suggestions(ctx, SuggestionsParams{Keyword: "lofi", Locale: locale(full)})
			},
			min:  "keyword=lofi",
			full: "keyword=lofi&gl=US&hl=en",
		},
		{
			name: "video detail",
			path: "/api/v1/video/detail",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Video().Detail(ctx, VideoDetailParams{VideoID: "dQw4w9WgXcQ", Locale: locale(full)})
			},
			min:  "videoId=dQw4w9WgXcQ",
			full: "videoId=dQw4w9WgXcQ&gl=US&hl=en",
		},
		{
			name: "video comments",
			path: "/api/v1/video/comments",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Video().Comments(ctx, VideoCommentsParams{
					VideoID:      "v1",
					SortBy:       pick(full, SortTopComments),
					Continuation: pick(full, "C2"),
					Locale:       locale(full),
				})
			},
			min:  "videoId=v1",
			full: "videoId=v1&sortBy=TOP_COMMENTS&continuation=C2&gl=US&hl=en",
		},
		{
			name: "video reply comments",
			path: "/api/v1/video/reply-comments",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Video().ReplyComments(ctx, VideoReplyCommentsParams{Continuation: "TOKEN123", Locale: locale(full)})
			},
			min:  "continuation=TOKEN123",
			full: "continuation=TOKEN123&gl=US&hl=en",
		},
		{
			name: "channel detail",
			path: "/api/v1/chanel/detail",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Channel().Detail(ctx, ChannelDetailParams{ChannelID: "UC1", Locale: locale(full)})
			},
			min:  "channelId=UC1",
			full: "channelId=UC1&gl=US&hl=en",
		},
		channelTab("/api/v1/chanel/videos", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Videos }),
		channelTab("/api/v1/chanel/playlists", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Playlists }),
		channelTab("/api/v1/chanel/releases", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Releases }),
		channelTab("/api/v1/chanel/posts", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Posts }),
		channelTab("/api/v1/chanel/shorts", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Shorts }),
		channelTab("/api/v1/chanel/store", func(s *ChannelService) func(context.Context, ChannelPageParams) (json.RawMessage, error) { return s.Store }),
		{
			name: "channel search",
			path: "/api/v1/chanel/search",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Channel().Search(ctx, ChannelSearchParams{ChannelID: "UC1", Keyword: "music", Continuation: pick(full, "P2"), Locale: locale(full)})
			},
			min:  "channelId=UC1&keyword=music",
			full: "channelId=UC1&keyword=music&continuation=P2&gl=US&hl=en",
		},
		{
			name: "trending video",
			path: "/api/v1/trending/video",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Trending().Video(ctx, TrendingVideoParams{CountryCode: pick(full, "JP"), Locale: locale(full)})
			},
			min:  "",
			full: "countryCode=JP&gl=US&hl=en",
		},
		{
			name: "trending top video",
			path: "/api/v1/trending/top-video",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Trending().TopVideo(ctx, TopVideoParams{
					FilterByType: pick(full, ChartWeekly),
					FilterByDate: pick(full, "20260101"),
					CountryCode:  pick(full, "JP"),
					Locale:       locale(full),
				})
			},
			min:  "",
			full: "filterByType=WEEKLY&filterByDate=20260101&countryCode=JP&gl=US&hl=en",
		},
		{
			name: "trending song",
			path: "/api/v1/trending/song",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Trending().Song(ctx, SongParams{CountryCode: pick(full, "JP"), FilterByDate: pick(full, "20260101"), Locale: locale(full)})
			},
			min:  "",
			full: "countryCode=JP&filterByDate=20260101&gl=US&hl=en",
		},
		{
			name: "trending artist",
			path: "/api/v1/trending/artist",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Trending().Artist(ctx, ArtistParams{CountryCode: pick(full, "JP"), FilterByDate: pick(full, "20260101"), Locale: locale(full)})
			},
			min:  "",
			full: "countryCode=JP&filterByDate=20260101&gl=US&hl=en",
		},
		{
			name: "trending top short song",
			path: "/api/v1/trending/top-short-song",
			call: func(ctx context.Context, c *Client, full bool) (json.RawMessage, error) {
				return c.Trending().TopShortSong(ctx, TopShortSongParams{
					CountryCode:  pick(full, "JP"),
					FilterByType: pick(full, ChartDaily),
					FilterByDate: pick(full, "20260101"),
					Locale:       locale(full),
				})
			},
			min:  "",
			full: "countryCode=JP&filterByType=DAILY&filterByDate=20260101&gl=US&hl=en",
		},
	}
}

func TestOperationsOmitAbsentFields(t *testing.T) {
	for _, tc := range operationCases() {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeUpstream(t)
			c := newTestClient(t, f)

			_, err := tc.call(context.Background(), c, false)
			require.NoError(t, err)

			got := f.last(t)
			assert.Equal(t, tc.path, got.Path)
			assert.Equal(t, tc.min, got.RawQuery)

			values, err := url.ParseQuery(got.RawQuery)
			require.NoError(t, err)
			for k, vs := range values {
				for _, v := range vs {
					assert.NotEmpty(t, v, "key %q sent with empty value", k)
					assert.NotEqual(t, "undefined", v)
				}
			}
		})
	}
}

func TestOperationsSendEveryField(t *testing.T) {
	for _, tc := range operationCases() {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeUpstream(t)
			c := newTestClient(t, f)

			_, err := tc.call(context.Background(), c, true)
			require.NoError(t, err)

			got := f.last(t)
			assert.Equal(t, tc.path, got.Path)
			assert.Equal(t, tc.full, got.RawQuery)

			values, err := url.ParseQuery(got.RawQuery)
			require.NoError(t, err)
			for k, vs := range values {
				assert.Len(t, vs, 1, "key %q sent more than once", k)
			}
		})
	}
}

func TestSearchScenario(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, err := c.Explore().Search(context.Background(), SearchParams{Keyword: "lofi", Type: Ptr(SearchVideo)})
	require.NoError(t, err)

	got := f.last(t)
	assert.Equal(t, "/api/v1/search", got.Path)
	assert.Equal(t, "keyword=lofi&type=VIDEO", got.RawQuery)
}

func TestReplyCommentsScenario(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, err := c.Video().ReplyComments(context.Background(), VideoReplyCommentsParams{Continuation: "TOKEN123"})
	require.NoError(t, err)

	got := f.last(t)
	assert.Equal(t, "/api/v1/video/reply-comments", got.Path)
	assert.Equal(t, "continuation=TOKEN123", got.RawQuery)
}

func TestChannelSearchScenario(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	_, err := c.Channel().Search(context.Background(), ChannelSearchParams{ChannelID: "UC1", Keyword: "music", Continuation: String("P2")})
	require.NoError(t, err)

	got := f.last(t)
	assert.Equal(t, "/api/v1/chanel/search", got.Path)
	assert.Equal(t, "channelId=UC1&keyword=music&continuation=P2", got.RawQuery)
}

func TestContinuationTokenRoundTrip(t *testing.T) {
	tokens := []string{
		"4qmFsgKrARIYVUN4X1hZ",
		"EpMDEgZsb2ZpIGJlYXRz%3D%3D",
		"a+b/c=d&e?f#g",
		"ünïcødé token",
	}
	for _, tok := range tokens {
		t.Run(tok, func(t *testing.T) {
			p := ChannelPageParams{ChannelID: "UC1", Continuation: String(tok)}
			v, ok := p.Query().Get("continuation")
			require.True(t, ok)
			assert.Equal(t, tok, v)

			f := newFakeUpstream(t)
			c := newTestClient(t, f)
			_, err := c.Channel().Videos(context.Background(), p)
			require.NoError(t, err)

			values, err := url.ParseQuery(f.last(t).RawQuery)
			require.NoError(t, err)
			assert.Equal(t, []string{tok}, values["continuation"])
		})
	}
}

func TestChannelTabGeneric(t *testing.T) {
	f := newFakeUpstream(t)
	c := newTestClient(t, f)

	for _, tab := range ChannelTabs {
		_, err := c.Channel().Tab(context.Background(), tab, ChannelPageParams{ChannelID: "UC9"})
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/chanel/"+tab, f.last(t).Path)
	}
}
