package ytserver

import (
	"context"
	"encoding/json"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TrendingVideoInput struct {
	CountryCode string `json:"country_code,omitempty" jsonschema:"Country code (e.g. US, JP)"`
	GL          string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL          string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

// ChartInput is shared by the ranked charts that accept a period filter.
type ChartInput struct {
	CountryCode  string `json:"country_code,omitempty" jsonschema:"Country code (e.g. US, JP)"`
	FilterByType string `json:"filter_by_type,omitempty" jsonschema:"Chart period: DAILY or WEEKLY"`
	FilterByDate string `json:"filter_by_date,omitempty" jsonschema:"Chart date as YYYYMMDD"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

// MusicChartInput is shared by the song and artist charts.
type MusicChartInput struct {
	CountryCode  string `json:"country_code,omitempty" jsonschema:"Country code (e.g. US, JP)"`
	FilterByDate string `json:"filter_by_date,omitempty" jsonschema:"Chart date as YYYYMMDD"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

func registerTrendingTools(server *mcp.Server, client *ytscraper.Client, cache *toolutil.Cache) int {
	addTool(server, cache, "youtube_trending_video",
		"Currently trending videos for a country.",
		func(in TrendingVideoInput) (call, error) { return buildTrendingVideo(client, in) })
	addTool(server, cache, "youtube_trending_top_video",
		"Top video chart with chart positions, daily or weekly.",
		func(in ChartInput) (call, error) { return buildTopVideo(client, in) })
	addTool(server, cache, "youtube_trending_song",
		"Trending songs chart with chart positions.",
		func(in MusicChartInput) (call, error) { return buildSong(client, in) })
	addTool(server, cache, "youtube_trending_artist",
		"Trending artists chart with chart positions.",
		func(in MusicChartInput) (call, error) { return buildArtist(client, in) })
	addTool(server, cache, "youtube_trending_top_short_song",
		"Top songs used in Shorts, daily or weekly.",
		func(in ChartInput) (call, error) { return buildTopShortSong(client, in) })
	return 5
}

func buildTrendingVideo(client *ytscraper.Client, in TrendingVideoInput) (call, error) {
	p := ytscraper.TrendingVideoParams{CountryCode: toolutil.Opt(in.CountryCode), Locale: locale(in.GL, in.HL)}
	return call{
		path:  ytscraper.PathTrendingVideo,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Trending().Video(ctx, p) },
	}, nil
}

func buildTopVideo(client *ytscraper.Client, in ChartInput) (call, error) {
	if err := checkDate(in.FilterByDate); err != nil {
		return call{}, err
	}
	p := ytscraper.TopVideoParams{
		FilterByType: toolutil.OptAs[ytscraper.ChartPeriod](in.FilterByType),
		FilterByDate: toolutil.Opt(in.FilterByDate),
		CountryCode:  toolutil.Opt(in.CountryCode),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathTrendingTopVideo,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Trending().TopVideo(ctx, p) },
	}, nil
}

func buildSong(client *ytscraper.Client, in MusicChartInput) (call, error) {
	if err := checkDate(in.FilterByDate); err != nil {
		return call{}, err
	}
	p := ytscraper.SongParams{
		CountryCode:  toolutil.Opt(in.CountryCode),
		FilterByDate: toolutil.Opt(in.FilterByDate),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathTrendingSong,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Trending().Song(ctx, p) },
	}, nil
}

func buildArtist(client *ytscraper.Client, in MusicChartInput) (call, error) {
	if err := checkDate(in.FilterByDate); err != nil {
		return call{}, err
	}
	p := ytscraper.ArtistParams{
		CountryCode:  toolutil.Opt(in.CountryCode),
		FilterByDate: toolutil.Opt(in.FilterByDate),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathTrendingArtist,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Trending().Artist(ctx, p) },
	}, nil
}

func buildTopShortSong(client *ytscraper.Client, in ChartInput) (call, error) {
	if err := checkDate(in.FilterByDate); err != nil {
		return call{}, err
	}
	p := ytscraper.TopShortSongParams{
		CountryCode:  toolutil.Opt(in.CountryCode),
		FilterByType: toolutil.OptAs[ytscraper.ChartPeriod](in.FilterByType),
		FilterByDate: toolutil.Opt(in.FilterByDate),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathTrendingTopShortSong,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Trending().TopShortSong(ctx, p) },
	}, nil
}
