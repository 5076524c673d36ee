package ytserver

import (
	"context"
	"encoding/json"

	"github.com/anatolykoptev/go_ytscraper/internal/toolutil"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type SearchInput struct {
	Keyword      string `json:"keyword" jsonschema:"Search keywords"`
	UploadDate   string `json:"upload_date,omitempty" jsonschema:"Upload date filter: 1_HOUR_AGO, TODAY, THIS_WEEK, THIS_MONTH, THIS_YEAR"`
	Type         string `json:"type,omitempty" jsonschema:"Result type: VIDEO or MOVIE"`
	Continuation string `json:"continuation,omitempty" jsonschema:"Continuation token from a previous page"`
	GL           string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL           string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

type SuggestionsInput struct {
	Keyword string `json:"keyword" jsonschema:"Partial search keywords"`
	GL      string `json:"gl,omitempty" jsonschema:"Geography code (e.g. US)"`
	HL      string `json:"hl,omitempty" jsonschema:"Language code (e.g. en)"`
}

func registerExploreTools(server *mcp.Server, client *ytscraper.Client, cache *toolutil.Cache) int {
	addTool(server, cache, "youtube_search",
		"Search YouTube videos and movies by keyword. Returns the raw scraper payload including a continuation token for the next page.",
		func(in SearchInput) (call, error) { return buildSearch(client, in) })
	addTool(server, cache, "youtube_suggestions",
		"Autocomplete suggestions for a partial YouTube search keyword.",
		func(in SuggestionsInput) (call, error) { return buildSuggestions(client, in) })
	return 2
}

func buildSearch(client *ytscraper.Client, in SearchInput) (call, error) {
	if err := required("keyword", in.Keyword); err != nil {
		return call{}, err
	}
	p := ytscraper.SearchParams{
		Keyword:      in.Keyword,
		Locale:       locale(in.GL, in.HL),
		UploadDate:   toolutil.OptAs[ytscraper.UploadDate](in.UploadDate),
		Type:         toolutil.OptAs[ytscraper.SearchType](in.Type),
		Continuation: toolutil.Opt(in.Continuation),
	}
	return call{
		path:  ytscraper.PathSearch,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Explore().Search(ctx, p) },
	}, nil
}

func buildSuggestions(client *ytscraper.Client, in SuggestionsInput) (call, error) {
	if err := required("keyword", in.Keyword); err != nil {
		return call{}, err
	}
	p := ytscraper.SuggestionsParams{Keyword: in.Keyword, Locale: locale(in.GL, in.HL)}
	return call{
		path:  ytscraper.PathSuggestions,
		query: p.Query(),
		fetch: func(ctx context.Context) (json.RawMessage, error) { return client.Explore().Suggestions(ctx, p) },
	}, nil
}
