package ytscraper

import (
	"context"
	"encoding/json"
)

const (
	PathTrendingVideo        = "/api/v1/trending/video"
	PathTrendingTopVideo     = "/api/v1/trending/top-video"
	PathTrendingSong         = "/api/v1/trending/song"
	PathTrendingArtist       = "/api/v1/trending/artist"
	PathTrendingTopShortSong = "/api/v1/trending/top-short-song"
)

// ChartPeriod selects daily or weekly chart data.
type ChartPeriod string

const (
	ChartDaily  ChartPeriod = "DAILY"
	ChartWeekly ChartPeriod = "WEEKLY"
)

type TrendingVideoParams struct {
	CountryCode *string
	Locale
}

func (p TrendingVideoParams) Query() Query {
	var q Query
	addOptional(&q, "countryCode", p.CountryCode)
	p.Locale.addTo(&q)
	return q
}

// TopVideoParams select a top-video chart. FilterByDate is YYYYMMDD;
// see FilterDate.
type TopVideoParams struct {
	FilterByType *ChartPeriod
	FilterByDate *string
	CountryCode  *string
	Locale
}

func (p TopVideoParams) Query() Query {
	var q Query
	addOptional(&q, "filterByType", p.FilterByType)
	addOptional(&q, "filterByDate", p.FilterByDate)
	addOptional(&q, "countryCode", p.CountryCode)
	p.Locale.addTo(&q)
	return q
}

type SongParams struct {
	CountryCode  *string
	FilterByDate *string
	Locale
}

func (p SongParams) Query() Query {
	var q Query
	addOptional(&q, "countryCode", p.CountryCode)
	addOptional(&q, "filterByDate", p.FilterByDate)
	p.Locale.addTo(&q)
	return q
}

type ArtistParams struct {
	CountryCode  *string
	FilterByDate *string
	Locale
}

func (p ArtistParams) Query() Query {
	var q Query
	addOptional(&q, "countryCode", p.CountryCode)
	addOptional(&q, "filterByDate", p.FilterByDate)
	p.Locale.addTo(&q)
	return q
}

type TopShortSongParams struct {
	CountryCode  *string
	FilterByType *ChartPeriod
	FilterByDate *string
	Locale
}

func (p TopShortSongParams) Query() Query {
	var q Query
	addOptional(&q, "countryCode", p.CountryCode)
	addOptional(&q, "filterByType", p.FilterByType)
	addOptional(&q, "filterByDate", p.FilterByDate)
	p.Locale.addTo(&q)
	return q
}

// TrendingService covers chart and trending endpoints. No parameter is required.
type TrendingService struct {
	t *Transport
}

func (s *TrendingService) Video(ctx context.Context, p TrendingVideoParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathTrendingVideo, p)
}

func (s *TrendingService) TopVideo(ctx context.Context, p TopVideoParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathTrendingTopVideo, p)
}

func (s *TrendingService) Song(ctx context.Context, p SongParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathTrendingSong, p)
}

func (s *TrendingService) Artist(ctx context.Context, p ArtistParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathTrendingArtist, p)
}

func (s *TrendingService) TopShortSong(ctx context.Context, p TopShortSongParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathTrendingTopShortSong, p)
}
