package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for dsctl resources.
	uriScheme = "dsctl://"

	// historyLimit caps the invocations returned by the history resource.
	historyLimit = 50
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Most recent command invocations",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{invocationId}",
		Name:        "invocation",
		Description: "A single recorded command invocation",
		MIMEType:    "application/json",
	}, s.handleInvocationResource)
}

// invocationInfo is the JSON form of a recorded invocation.
type invocationInfo struct {
	ID         string   `json:"id"`
	Command    string   `json:"command"`
	Args       []string `json:"args"`
	ResultType string   `json:"result_type"`
	Result     string   `json:"result,omitempty"`
	Error      string   `json:"error,omitempty"`
	StartedAt  string   `json:"started_at"`
	DurationMS float64  `json:"duration_ms"`
}

func newInvocationInfo(inv *domain.Invocation) invocationInfo {
	args := inv.Args
	if args == nil {
		args = []string{}
	}
	return invocationInfo{
		ID:         inv.ID,
		Command:    inv.Command,
		Args:       args,
		ResultType: inv.ResultType.String(),
		Result:     inv.Result,
		Error:      inv.Error,
		StartedAt:  inv.StartedAt.UTC().Format(time.RFC3339Nano),
		DurationMS: float64(inv.Duration) / float64(time.Millisecond),
	}
}

// handleHistoryResource returns the most recent invocations.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	invocations, err := s.ports.History.Recent(ctx, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	infos := make([]invocationInfo, len(invocations))
	for i := range invocations {
		infos[i] = newInvocationInfo(&invocations[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleInvocationResource returns one recorded invocation.
func (s *Server) handleInvocationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract invocationId from URI: dsctl://history/{invocationId}
	id := extractInvocationID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	inv, err := s.ports.History.Get(ctx, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(newInvocationInfo(inv), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling invocation: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractInvocationID extracts the ID from a URI like dsctl://history/{invocationId}.
func extractInvocationID(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
