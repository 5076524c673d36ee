package ytscraper

import (
	"context"
	"encoding/json"
)

const (
	PathSearch      = "/api/v1/search"
	PathSuggestions = "/api/v1/suggestions"
)

// UploadDate filters search results by upload time.
type UploadDate string

const (
	UploadLastHour  UploadDate = "1_HOUR_AGO"
	UploadToday     UploadDate = "TODAY"
	UploadThisWeek  UploadDate = "THIS_WEEK"
	UploadThisMonth UploadDate = "THIS_MONTH"
	UploadThisYear  UploadDate = "THIS_YEAR"
)

// SearchType restricts search results to one kind of item.
type SearchType string

const (
	SearchVideo SearchType = "VIDEO"
	SearchMovie SearchType = "MOVIE"
)

// SearchParams are the parameters of ExploreService.Search.
type SearchParams struct {
	Keyword string
	Locale
	UploadDate   *UploadDate
	Type         *SearchType
	Continuation *string
}

func (p SearchParams) Query() Query {
	var q Query
	q.add("keyword", p.Keyword)
	p.Locale.addTo(&q)
	addOptional(&q, "uploadDate", p.UploadDate)
	addOptional(&q, "type", p.Type)
	addOptional(&q, "continuation", p.Continuation)
	return q
}

// SuggestionsParams are the parameters of ExploreService.Suggestions.
type SuggestionsParams struct {
	Keyword string
	Locale
}

func (p SuggestionsParams) Query() Query {
	var q Query
	q.add("keyword", p.Keyword)
	p.Locale.addTo(&q)
	return q
}

// ExploreService covers search and autocomplete.
type ExploreService struct {
	t *Transport
}

// Search runs a keyword search. Pass the continuation token from a previous
// response to fetch the next page.
func (s *ExploreService) Search(ctx context.Context, p SearchParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathSearch, p)
}

// Suggestions returns autocomplete suggestions for a keyword.
func (s *ExploreService) Suggestions(ctx context.Context, p SuggestionsParams) (json.RawMessage, error) {
	return s.t.get(ctx, PathSuggestions, p)
}
