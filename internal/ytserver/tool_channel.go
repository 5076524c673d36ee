package ytserver

import (
	"context"
	"encoding/json"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ChannelDetailInput struct {
	ChannelID string `json:"channel_id" jsonschema:"YouTube channel ID (UC...)"`
	GL        string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL        string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

type ChannelPageInput struct {
	ChannelID    string `json:"channel_id" jsonschema:"YouTube channel ID (UC...)"`
	Continuation string `json:"continuation,omitempty" jsonschema:"Continuation token from a previous page of the same tab"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

type ChannelSearchInput struct {
	ChannelID    string `json:"channel_id" jsonschema:"YouTube channel ID (UC...)"`
	Keyword      string `json:"keyword" jsonschema:"Search keywords"`
	Continuation string `json:"continuation,omitempty" jsonschema:"Continuation token from a previous page"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

var tabDescriptions = map[string]string{
	ytscraper.TabVideos:    "Videos uploaded by a channel, one page at a time.",
	ytscraper.TabPlaylists: "Playlists of a channel, one page at a time.",
	ytscraper.TabReleases:  "Music releases (albums, singles) of a channel, one page at a time.",
	ytscraper.TabPosts:     "Community posts of a channel, one page at a time.",
	ytscraper.TabShorts:    "Shorts uploaded by a channel, one page at a time.",
	ytscraper.TabStore:     "Store items (merch) listed on a channel, one page at a time.",
}

func registerChannelTools(server *mcp.Server, client *ytscraper.Client, cache *toolutil.Cache) int {
	addTool(server, cache, "youtube_channel_detail",
		"Channel metadata: title, handle, subscriber count, description, links.",
		func(in ChannelDetailInput) (call, error) { return buildChannelDetail(client, in) })

	for _, tab := range ytscraper.ChannelTabs {
		addTool(server, cache, "youtube_channel_"+tab,
			tabDescriptions[tab]+" Pass the continuation token from the previous page to continue.",
			func(in ChannelPageInput) (call, error) { return buildChannelTab(client, tab, in) })
	}

	addTool(server, cache, "youtube_channel_search",
		"Search within one channel's content by keyword.",
		func(in ChannelSearchInput) (call, error) { return buildChannelSearch(client, in) })
	return len(ytscraper.ChannelTabs) + 2
}

func buildChannelDetail(client *ytscraper.Client, in ChannelDetailInput) (call, error) {
	if err := required("channel_id", in.ChannelID); err != nil {
		return call{}, err
	}
	p := ytscraper.ChannelDetailParams{ChannelID: in.ChannelID, Locale: locale(in.GL, in.HL)}
	return call{
		path:  ytscraper.PathChannelDetail,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Channel().Detail(ctx, p) },
	}, nil
}

func buildChannelTab(client *ytscraper.Client, tab string, in ChannelPageInput) (call, error) {
	if err := required("channel_id", in.ChannelID); err != nil {
		return call{}, err
	}
	p := ytscraper.ChannelPageParams{
		ChannelID:    in.ChannelID,
		Continuation: toolutil.Opt(in.Continuation),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.ChannelTabPath(tab),
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Channel().Tab(ctx, tab, p) },
	}, nil
}

func buildChannelSearch(client *ytscraper.Client, in ChannelSearchInput) (call, error) {
	if err := required("channel_id", in.ChannelID); err != nil {
		return call{}, err
	}
	if err := required("keyword", in.Keyword); err != nil {
		return call{}, err
	}
	p := ytscraper.ChannelSearchParams{
		ChannelID:    in.ChannelID,
		Keyword:      in.Keyword,
		Continuation: toolutil.Opt(in.Continuation),
		Locale:       locale(in.GL, in.HL),
	}
	return call{
		path:  ytscraper.PathChannelSearch,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Channel().Search(ctx, p) },
	}, nil
}
