package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/dsctl/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// listCommandsTool is the name of the built-in discovery tool. A command
// registered under the same name is not exposed.
const listCommandsTool = "list_commands"

// shutdownTimeout bounds how long RunHTTP waits for in-flight invocations.
const shutdownTimeout = 5 * time.Second

const instructions = `Each tool except list_commands runs one dsctl command.
Pass positional arguments as {"args": [...]}; every argument is text and is
typed by inference: true/false become booleans, text with a dot becomes a
number, null becomes Nil, integers become integers and everything else stays
text. Results carry the variant name, the JSON value and the display form.`

// Server exposes the registered commands over MCP. The tool set is fixed
// when the server is created.
type Server struct {
	ports  *Ports
	server *mcp.Server
	tools  []string
}

// NewServer creates a server with list_commands, one tool per registered
// command and the history resources.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "dsctl",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions}),
	}

	s.registerListCommands()
	s.registerCommandTools()
	s.registerResources()

	logger.Debug("mcp: %d tool(s) registered", len(s.tools))
	return s, nil
}

// registerCommandTools adds a tool for every registered command.
func (s *Server) registerCommandTools() {
	for _, info := range s.ports.Commands.List() {
		if info.Name == listCommandsTool {
			logger.Warn("mcp: command %q shadows the %s tool and is not exposed", info.Name, listCommandsTool)
			continue
		}
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        info.Name,
			Description: toolDescription(info),
		}, s.invokeHandler(info.Name))
		s.tools = append(s.tools, info.Name)
	}
}

// Tools returns the names of the registered tools in registration order.
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

// Run serves over stdio until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("mcp: serving %d tool(s) over stdio", len(s.tools))
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves streamable HTTP on addr until ctx is done, then waits up
// to shutdownTimeout for open requests.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutdown: %v", err)
		}
	}()

	logger.Info("mcp: serving %d tool(s) on %s", len(s.tools), addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
