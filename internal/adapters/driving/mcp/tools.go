package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// ListCommandsInput is the input schema for the list_commands tool.
type ListCommandsInput struct {
	Module string `json:"module,omitempty" jsonschema:"only list commands of this module"`
}

// ListCommandsOutput is the output schema for the list_commands tool.
type ListCommandsOutput struct {
	Commands []CommandOutput `json:"commands"`
	Count    int             `json:"count"`
}

// CommandOutput describes one registered command.
type CommandOutput struct {
	Name        string        `json:"name"`
	Module      string        `json:"module,omitempty"`
	Description string        `json:"description,omitempty"`
	Arity       int           `json:"arity"`
	Params      []ParamOutput `json:"params,omitempty"`
}

// ParamOutput describes one store-backed parameter.
type ParamOutput struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
}

// InvokeInput is the input schema of every command tool.
type InvokeInput struct {
	Args []string `json:"args,omitempty" jsonschema:"positional arguments; each is typed by inference (true, 1.5, 10, null, text)"`
}

// InvokeOutput is the output schema of every command tool.
type InvokeOutput struct {
	Type    string `json:"type"`
	Value   any    `json:"value"`
	Display string `json:"display"`
}

// registerListCommands registers the discovery tool.
func (s *Server) registerListCommands() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        listCommandsTool,
		Description: "List the commands registered by data-source modules",
	}, s.handleListCommands)
	s.tools = append(s.tools, listCommandsTool)
}

// handleListCommands handles the list_commands tool invocation.
func (s *Server) handleListCommands(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListCommandsInput,
) (*mcp.CallToolResult, ListCommandsOutput, error) {
	output := ListCommandsOutput{Commands: []CommandOutput{}}

	for _, info := range s.ports.Commands.List() {
		if input.Module != "" && info.Module != input.Module {
			continue
		}
		cmd := CommandOutput{
			Name:        info.Name,
			Module:      info.Module,
			Description: info.Description,
			Arity:       info.Arity,
		}
		for _, p := range info.Params {
			cmd.Params = append(cmd.Params, ParamOutput{Index: p.Index, Type: p.Type})
		}
		output.Commands = append(output.Commands, cmd)
	}
	output.Count = len(output.Commands)

	return nil, output, nil
}

// invokeHandler returns the tool handler for the named command.
func (s *Server) invokeHandler(name string) mcp.ToolHandlerFor[InvokeInput, InvokeOutput] {
	return func(
		ctx context.Context,
		_ *mcp.CallToolRequest,
		input InvokeInput,
	) (*mcp.CallToolResult, InvokeOutput, error) {
		result, err := s.ports.Commands.Invoke(ctx, name, input.Args)
		if err != nil {
			return nil, InvokeOutput{}, err
		}

		output, err := newInvokeOutput(result)
		if err != nil {
			return nil, InvokeOutput{}, err
		}
		return nil, output, nil
	}
}

func newInvokeOutput(v domain.Value) (InvokeOutput, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return InvokeOutput{}, fmt.Errorf("encoding result: %w", err)
	}
	return InvokeOutput{
		Type:    v.Type().String(),
		Value:   json.RawMessage(raw),
		Display: v.String(),
	}, nil
}

// toolDescription appends the positional parameter layout to the command
// description, e.g. "Add two integers. Args: [0] int64, [1] int64".
func toolDescription(info domain.CommandInfo) string {
	desc := info.Description
	if desc == "" {
		desc = info.Name
	}
	if len(info.Params) == 0 {
		return desc
	}

	parts := make([]string, len(info.Params))
	for i, p := range info.Params {
		parts[i] = fmt.Sprintf("[%d] %s", p.Index, p.Type)
	}
	return fmt.Sprintf("%s. Args: %s", strings.TrimSuffix(desc, "."), strings.Join(parts, ", "))
}
