// ABOUTME: MCP server setup for the hypertrophy workout tracker.
// ABOUTME: Wraps the MCP server around one session controller; tool calls are serialised.
package mcp

import (
	"context"
	"sync"

	"github.com/harperreed/hypertrophy/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

// Server wraps the MCP server with the session controller.
type Server struct {
	mcpServer *mcp.Server
	ctrl      *session.Controller
	log       logrus.FieldLogger

	// mu serialises every tool and resource call against ctrl.
	mu sync.Mutex
}

// NewServer creates a new MCP server driving ctrl.
func NewServer(ctrl *session.Controller, log logrus.FieldLogger) (*Server, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "hypertrophy",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ctrl:      ctrl,
		log:       log.WithField("component", "mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
