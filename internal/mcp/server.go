package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/codeassist/internal/gateway"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the gateway operations as tools.
type Server struct {
	gateway *gateway.Gateway
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server backed by g.
func NewServer(g *gateway.Gateway) *Server {
	s := &Server{gateway: g}

	s.mcp = server.NewMCPServer(
		"codeassist",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(convertCodeTool, s.handleConvertCode)
	s.mcp.AddTool(debugCodeTool, s.handleDebugCode)
	s.mcp.AddTool(checkCodeQualityTool, s.handleCheckCodeQuality)
}

// Serve starts the MCP server on stdio. Stdout carries MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
