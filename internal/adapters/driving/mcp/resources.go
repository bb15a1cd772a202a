package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/menusearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for menusearch resources.
	uriScheme = "menusearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing menus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "menus",
		Name:        "menus",
		Description: "Menu names with their paths",
		MIMEType:    "application/json",
	}, s.handleMenusResource)

	// Template for one menu's items.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "menus/{name}",
		Name:        "menu-items",
		Description: "Active items of one menu grouped by section",
		MIMEType:    "application/json",
	}, s.handleMenuResource)
}

// handleMenusResource returns the menu list.
func (s *Server) handleMenusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	links, err := s.ports.Detail.Menus(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing menus: %w", err)
	}
	return jsonResult(req.Params.URI, links)
}

// menuSection is the JSON form of one section of a menu.
type menuSection struct {
	Name  string     `json:"name"`
	Items []menuItem `json:"items"`
}

type menuItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// handleMenuResource returns the items of the menu named in the URI.
func (s *Server) handleMenuResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractMenuName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	page, err := s.ports.Detail.LoadMenu(ctx, "/menu/"+name)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidPath) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("loading menu: %w", err)
	}

	sections := make([]menuSection, 0, len(page.Sections))
	for _, sec := range page.Sections {
		out := menuSection{Name: sec.Name, Items: make([]menuItem, 0, len(sec.Items))}
		for _, it := range sec.Items {
			out.Items = append(out.Items, menuItem{ID: it.ID, Title: it.Title})
		}
		sections = append(sections, out)
	}
	return jsonResult(req.Params.URI, sections)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractMenuName extracts the still-encoded menu name from a URI like
// menusearch://menus/{name}.
func extractMenuName(uri string) string {
	const prefix = uriScheme + "menus/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
