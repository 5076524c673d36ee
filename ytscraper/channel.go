package ytscraper

import (
	"context"
	"encoding/json"
)

// The upstream API spells the segment "chanel".
const channelPrefix = "/api/v1/chanel/"

const (
	PathChannelDetail    = channelPrefix + "detail"
	PathChannelVideos    = channelPrefix + TabVideos
	PathChannelPlaylists = channelPrefix + TabPlaylists
	PathChannelReleases  = channelPrefix + TabReleases
	PathChannelPosts     = channelPrefix + TabPosts
	PathChannelShorts    = channelPrefix + TabShorts
	PathChannelStore     = channelPrefix + TabStore
	PathChannelSearch    = channelPrefix + "search"
)

// Channel tabs served by the paged sub-resource endpoints.
const (
	TabVideos    = "videos"
	TabPlaylists = "playlists"
	TabReleases  = "releases"
	TabPosts     = "posts"
	TabShorts    = "shorts"
	TabStore     = "store"
)

// ChannelTabs lists every paged channel tab.
var ChannelTabs = []string{TabVideos, TabPlaylists, TabReleases, TabPosts, TabShorts, TabStore}

type ChannelDetailParams struct {
	ChannelID string
	Locale
}

func (p ChannelDetailParams) Query() Query {
	var q Query
	q.add("channelId", p.ChannelID)
	p.Locale.addTo(&q)
	return q
}

// ChannelPageParams select one page of a channel tab.
type ChannelPageParams struct {
	ChannelID    string
	Continuation *string
	Locale
}

func (p ChannelPageParams) Query() Query {
	var q Query
	q.add("channelId", p.ChannelID)
	addOptional(&q, "continuation", p.Continuation)
	p.Locale.addTo(&q)
	return q
}

type ChannelSearchParams struct {
	ChannelID    string
	Keyword      string
	Continuation *string
	Locale
}

func (p ChannelSearchParams) Query() Query {
	var q Query
	q.add("channelId", p.ChannelID)
	q.add("keyword", p.Keyword)
	addOptional(&q, "continuation", p.Continuation)
	p.Locale.addTo(&q)
	return q
}

// ChannelService covers channel endpoints.
type ChannelService struct {
	t *Transport
}

// Detail returns channel metadata and stats.
func (s *ChannelService) Detail(ctx context.Context, p ChannelDetailParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathChannelDetail, p)
}

// ChannelTabPath returns the endpoint path of a channel tab.
func ChannelTabPath(tab string) string { return channelPrefix + tab }

// Tab fetches one page of the named tab (see ChannelTabs). Tab names are
// not checked; an unknown tab is rejected by the upstream service.
func (s *ChannelService) Tab(ctx context.Context, tab string, p ChannelPageParams) (json.RawMessage, error) {
	return s.t.get(ctx, ChannelTabPath(tab), p)
}

func (s *ChannelService) Videos(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabVideos, p)
}

func (s *ChannelService) Playlists(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabPlaylists, p)
}

func (s *ChannelService) Releases(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabReleases, p)
}

func (s *ChannelService) Posts(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabPosts, p)
}

func (s *ChannelService) Shorts(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabShorts, p)
}

func (s *ChannelService) Store(ctx context.Context, p ChannelPageParams) (json.RawMessage, error) {
	return s.Tab(ctx, TabStore, p)
}

// Search runs a keyword search inside one channel.
func (s *ChannelService) Search(ctx context.Context, p ChannelSearchParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathChannelSearch, p)
}
