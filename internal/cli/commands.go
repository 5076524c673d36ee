package cli

import (
	"context"
	"encoding/json"

	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/spf13/cobra"
)

func newSearchCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search videos and movies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.SearchParams{
				Keyword:      args[0],
				Locale:       locale(cmd),
				UploadDate:   optEnum[ytscraper.UploadDate](cmd, "upload-date"),
				Type:         optEnum[ytscraper.SearchType](cmd, "type"),
				Continuation: optFlag(cmd, "continuation"),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Explore().Search(ctx, p)
			})
		},
	}
	cmd.Flags().String("upload-date", "", "1_HOUR_AGO, TODAY, THIS_WEEK, THIS_MONTH or THIS_YEAR")
	cmd.Flags().String("type", "", "VIDEO or MOVIE")
	cmd.Flags().String("continuation", "", "Continuation token of the next page")
	return cmd
}

func newSuggestCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <keyword>",
		Short: "Autocomplete suggestions for a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.SuggestionsParams{Keyword: args[0], Locale: locale(cmd)}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Explore().Suggestions(ctx, p)
			})
		},
	}
}

func newVideoCmd(g *globalFlags) *cobra.Command {
	video := &cobra.Command{
		Use:   "video",
		Short: "Video detail, comments and replies",
	}

	detail := &cobra.Command{
		Use:   "detail <videoId>",
		Short: "Video metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.VideoDetailParams{VideoID: args[0], Locale: locale(cmd)}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Video().Detail(ctx, p)
			})
		},
	}

	comments := &cobra.Command{
		Use:   "comments <videoId>",
		Short: "One page of comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.VideoCommentsParams{
				VideoID:      args[0],
				SortBy:       optEnum[ytscraper.CommentSort](cmd, "sort-by"),
				Continuation: optFlag(cmd, "continuation"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Video().Comments(ctx, p)
			})
		},
	}
	comments.Flags().String("sort-by", "", "TOP_COMMENTS or NEWEST_FIRST")
	comments.Flags().String("continuation", "", "Continuation token of the next page")

	replies := &cobra.Command{
		Use:   "replies <continuation>",
		Short: "Replies to a comment, by the reply token of the parent comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.VideoReplyCommentsParams{Continuation: args[0], Locale: locale(cmd)}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Video().ReplyComments(ctx, p)
			})
		},
	}

	video.AddCommand(detail, comments, replies)
	return video
}

func newChannelCmd(g *globalFlags) *cobra.Command {
	channel := &cobra.Command{
		Use:   "channel",
		Short: "Channel detail, tabs and search",
	}

	channel.AddCommand(&cobra.Command{
		Use:   "detail <channelId>",
		Short: "Channel metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.ChannelDetailParams{ChannelID: args[0], Locale: locale(cmd)}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Channel().Detail(ctx, p)
			})
		},
	})

	for _, tab := range ytscraper.ChannelTabs {
		cmd := &cobra.Command{
			Use:   tab + " <channelId>",
			Short: "One page of the channel's " + tab,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := ytscraper.ChannelPageParams{
					ChannelID:    args[0],
					Continuation: optFlag(cmd, "continuation"),
					Locale:       locale(cmd),
				}
				return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
					return c.Channel().Tab(ctx, tab, p)
				})
			},
		}
		cmd.Flags().String("continuation", "", "Continuation token of the next page")
		channel.AddCommand(cmd)
	}

	search := &cobra.Command{
		Use:   "search <channelId> <keyword>",
		Short: "Search inside a channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.ChannelSearchParams{
				ChannelID:    args[0],
				Keyword:      args[1],
				Continuation: optFlag(cmd, "continuation"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Channel().Search(ctx, p)
			})
		},
	}
	search.Flags().String("continuation", "", "Continuation token of the next page")
	channel.AddCommand(search)

	return channel
}

func newTrendingCmd(g *globalFlags) *cobra.Command {
	trending := &cobra.Command{
		Use:   "trending",
		Short: "Trending videos and music charts",
	}

	video := &cobra.Command{
		Use:   "video",
		Short: "Trending videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.TrendingVideoParams{CountryCode: optFlag(cmd, "country"), Locale: locale(cmd)}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Trending().Video(ctx, p)
			})
		},
	}
	video.Flags().String("country", "", "Country code")

	topVideo := &cobra.Command{
		Use:   "top-video",
		Short: "Top video chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.TopVideoParams{
				FilterByType: optEnum[ytscraper.ChartPeriod](cmd, "period"),
				FilterByDate: optFlag(cmd, "date"),
				CountryCode:  optFlag(cmd, "country"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Trending().TopVideo(ctx, p)
			})
		},
	}
	chartFlags(topVideo, true)

	song := &cobra.Command{
		Use:   "song",
		Short: "Trending songs chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.SongParams{
				CountryCode:  optFlag(cmd, "country"),
				FilterByDate: optFlag(cmd, "date"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Trending().Song(ctx, p)
			})
		},
	}
	chartFlags(song, false)

	artist := &cobra.Command{
		Use:   "artist",
		Short: "Trending artists chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.ArtistParams{
				CountryCode:  optFlag(cmd, "country"),
				FilterByDate: optFlag(cmd, "date"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Trending().Artist(ctx, p)
			})
		},
	}
	chartFlags(artist, false)

	topShortSong := &cobra.Command{
		Use:   "top-short-song",
		Short: "Top songs used in Shorts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := ytscraper.TopShortSongParams{
				CountryCode:  optFlag(cmd, "country"),
				FilterByType: optEnum[ytscraper.ChartPeriod](cmd, "period"),
				FilterByDate: optFlag(cmd, "date"),
				Locale:       locale(cmd),
			}
			return g.runFetch(cmd, func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error) {
				return c.Trending().TopShortSong(ctx, p)
			})
		},
	}
	chartFlags(topShortSong, true)

	trending.AddCommand(video, topVideo, song, artist, topShortSong)
	return trending
}

func chartFlags(cmd *cobra.Command, period bool) {
	cmd.Flags().String("country", "", "Country code")
	cmd.Flags().String("date", "", "Chart date as YYYYMMDD")
	if period {
		cmd.Flags().String("period", "", "DAILY or WEEKLY")
	}
}
