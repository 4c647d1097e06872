// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes sitekit content tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/sitekit/internal/section"
	"github.com/starford/sitekit/internal/sequencer"
	"github.com/starford/sitekit/internal/site"
	"github.com/starford/sitekit/internal/storage"
)

const (
	sectionTypesURI   = "sitekit://section-types"
	documentFormatURI = "sitekit://document-format"
)

var slugRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Deps are the collaborators of the MCP tools.
type Deps struct {
	Catalog  *site.Catalog
	Registry *section.Registry
	Scripts  *sequencer.Library
	// Store is the content directory; nil disables save_site_document.
	Store storage.Provider
}

// Server wraps the MCP server with sitekit tools.
type Server struct {
	mcp  *server.MCPServer
	deps Deps
}

// New creates a new MCP server with all sitekit tools registered.
func New(deps Deps) *Server {
	s := &Server{deps: deps}

	s.mcp = server.NewMCPServer(
		"Sitekit",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_sites",
		mcp.WithDescription("List the site variants with their names and taglines."),
	), s.listSites)

	s.mcp.AddTool(mcp.NewTool("get_site_document",
		mcp.WithDescription("Return the YAML document of a site variant."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Site slug (e.g. levelup)")),
	), s.getSiteDocument)

	s.mcp.AddTool(mcp.NewTool("render_outline",
		mcp.WithDescription("Show the sections a site renders, in page order. "+
			"Disabled sections are skipped and unregistered types are flagged."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Site slug")),
	), s.renderOutline)

	s.mcp.AddTool(mcp.NewTool("list_demo_scripts",
		mcp.WithDescription("List the demo animation scripts a demo section can reference."),
	), s.listDemoScripts)

	s.mcp.AddTool(mcp.NewTool("save_site_document",
		mcp.WithDescription("Validate and save a site document as <slug>.yaml in the content directory. "+
			"Content MUST follow the document format; read it first via get_document_format "+
			"or the "+documentFormatURI+" resource."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("Site slug, lower-case kebab-case")),
		mcp.WithString("content", mcp.Required(), mcp.Description("YAML site document")),
	), s.saveSiteDocument)

	s.mcp.AddTool(mcp.NewTool("get_document_format",
		mcp.WithDescription("Returns the site document format. "+
			"Call this before drafting or editing a document."),
	), s.getDocumentFormat)

	s.mcp.AddResource(
		mcp.NewResource(sectionTypesURI, "Section Types",
			mcp.WithResourceDescription("Section type keys with a registered component."),
			mcp.WithMIMEType("application/json"),
		),
		s.readSectionTypes,
	)

	s.mcp.AddResource(
		mcp.NewResource(documentFormatURI, "Site Document Format",
			mcp.WithResourceDescription("YAML format of a site document."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDocumentFormat,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

type siteInfo struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	Default bool   `json:"default,omitempty"`
}

func (s *Server) listSites(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, def, _ := s.deps.Catalog.Default()
	out := []siteInfo{}
	for _, slug := range s.deps.Catalog.Slugs() {
		doc, err := s.deps.Catalog.Get(slug)
		if err != nil {
			continue
		}
		out = append(out, siteInfo{Slug: slug, Name: doc.Metadata.Name, Tagline: doc.Metadata.Tagline, Default: slug == def})
	}
	raw, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) getSiteDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.deps.Catalog.Get(slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
	}
	raw, err := site.Encode(doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) renderOutline(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.deps.Catalog.Get(slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
	}

	var b strings.Builder
	n := 0
	for _, e := range doc.Sections {
		if !e.Enabled {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d. %s", n, e.Type)
		if e.AnchorID != "" {
			fmt.Fprintf(&b, " #%s", e.AnchorID)
		}
		if _, ok := s.deps.Registry.Lookup(e.Type); !ok {
			b.WriteString(" [unregistered: hidden in production]")
		}
		b.WriteByte('\n')
	}
	if n == 0 {
		return mcp.NewToolResultText("no enabled sections"), nil
	}
	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}

type scriptInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	CycleMS int64    `json:"cycle_ms"`
	Phases  []string `json:"phases"`
}

func (s *Server) listDemoScripts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := []scriptInfo{}
	for _, name := range s.deps.Scripts.Names() {
		sc, _ := s.deps.Scripts.Lookup(name)
		info := scriptInfo{Name: sc.Name, Title: sc.Title, CycleMS: sc.CycleDuration().Milliseconds()}
		for _, p := range sc.Phases {
			info.Phases = append(info.Phases, p.Name)
		}
		out = append(out, info)
	}
	raw, _ := json.MarshalIndent(out, "", "  ")
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) saveSiteDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.deps.Store == nil {
		return mcp.NewToolResultError("content directory is not writable"), nil
	}
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !slugRe.MatchString(slug) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid slug: %q", slug)), nil
	}

	doc, err := site.Decode([]byte(content))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path := slug + ".yaml"
	if err := s.deps.Store.Write(path, []byte(content)); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save document: %v", err)), nil
	}

	msg := fmt.Sprintf("saved: %s", path)
	if issues := section.Lint(doc, s.deps.Registry); len(issues) > 0 {
		msg += "\nwarnings:\n" + strings.Join(issues, "\n")
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) getDocumentFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(DocumentFormat), nil
}

func (s *Server) sectionTypesJSON() string {
	keys := s.deps.Registry.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	raw, _ := json.Marshal(out)
	return string(raw)
}

func (s *Server) readSectionTypes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      sectionTypesURI,
			MIMEType: "application/json",
			Text:     s.sectionTypesJSON(),
		},
	}, nil
}

func (s *Server) readDocumentFormat(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      documentFormatURI,
			MIMEType: "text/markdown",
			Text:     DocumentFormat,
		},
	}, nil
}
