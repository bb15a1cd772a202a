package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/menusearch/internal/core/domain"
	"github.com/custodia-labs/menusearch/internal/core/ports/driving"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to find in dish, wine and bar item fields; at least 2 characters"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (at most 50)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Query   string                `json:"query"`
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

// OpenInput is the input schema for the open tool.
type OpenInput struct {
	Query string `json:"query" jsonschema:"the search query"`
	N     int    `json:"n" jsonschema:"1-based position of the result to open"`
}

// OpenOutput is the output schema for the open tool.
type OpenOutput struct {
	Path   string       `json:"path"`
	Result SearchResult `json:"result"`
}

// SearchResult is the short form of a result returned by open.
type SearchResult struct {
	Title string       `json:"title"`
	Field domain.Field `json:"field"`
	ID    string       `json:"id"`
}

// ShowInput is the input schema for the show tool.
type ShowInput struct {
	Path    string `json:"path" jsonschema:"item path such as /dish/42, as returned by open"`
	English bool   `json:"english,omitempty" jsonschema:"show the English translation"`
}

// ShowOutput is the output schema for the show tool.
type ShowOutput struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Kind     domain.ItemKind `json:"kind"`
	Language domain.Language `json:"language"`
	Archived bool            `json:"archived"`
	Tags     []string        `json:"tags,omitempty"`
	// Query is the search query restored from the handoff.
	Query string `json:"query,omitempty"`
	// Focus is the key of the first block containing Query.
	Focus  domain.AnchorKey `json:"focus,omitempty"`
	Blocks []Block          `json:"blocks"`
}

// Block is one section of an item page.
type Block struct {
	Key   domain.AnchorKey `json:"key"`
	Label string           `json:"label"`
	Text  string           `json:"text"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the restaurant menu catalog: dishes, wines, bar items and menus",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "open",
		Description: "Open the n-th search result; the item page will highlight the query",
	}, s.handleOpen)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "show",
		Description: "Show an item page by path",
	}, s.handleShow)
}

// search runs query against a loaded index.
func (s *Server) search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return s.ports.Search.Search(ctx, query)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > domain.MaxResults {
		limit = domain.MaxResults
	}

	results, err := s.search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if len(results) > limit {
		results = results[:limit]
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	return nil, SearchOutput{
		Query:   input.Query,
		Results: results,
		Count:   len(results),
	}, nil
}

// handleOpen selects a result and records the handoff for its page.
func (s *Server) handleOpen(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OpenInput,
) (*mcp.CallToolResult, OpenOutput, error) {
	results, err := s.search(ctx, input.Query)
	if err != nil {
		return nil, OpenOutput{}, err
	}
	if input.N < 1 || input.N > len(results) {
		return nil, OpenOutput{}, fmt.Errorf("%w: result %d of %d", domain.ErrNotFound, input.N, len(results))
	}

	r := results[input.N-1]
	path, err := s.ports.Navigation.Select(ctx, input.Query, r)
	if err != nil {
		return nil, OpenOutput{}, err
	}
	return nil, OpenOutput{
		Path:   path,
		Result: SearchResult{Title: r.Title, Field: r.Field, ID: r.ID},
	}, nil
}

// handleShow loads an item page, consuming a pending handoff for it.
func (s *Server) handleShow(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ShowInput,
) (*mcp.CallToolResult, ShowOutput, error) {
	page, err := s.ports.Detail.Load(ctx, input.Path, driving.DetailOptions{English: input.English})
	if err != nil {
		return nil, ShowOutput{}, err
	}

	out := ShowOutput{
		ID:       page.Item.ID,
		Kind:     page.Kind,
		Language: page.Language,
		Archived: page.Item.IsArchived(),
		Tags:     page.Tags,
		Query:    page.Query,
		Blocks:   make([]Block, 0, len(page.Anchors)),
	}
	for _, a := range page.Anchors {
		if a.Key == domain.AnchorTitle {
			out.Title = a.Text
			continue
		}
		out.Blocks = append(out.Blocks, Block{Key: a.Key, Label: a.Label, Text: a.Text})
	}
	if focused, ok := page.Focused(); ok {
		out.Focus = focused.Key
	}
	return nil, out, nil
}
