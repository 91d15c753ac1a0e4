package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// SplitInput is the input schema for the split_file and plan_split tools.
type SplitInput struct {
	Path      string `json:"path" jsonschema:"path or file:// URI of the text file to split"`
	Parts     int    `json:"parts" jsonschema:"number of parts, a positive integer"`
	OutputDir string `json:"output_dir,omitempty" jsonschema:"directory for part files (default: next to the source)"`
	Encoding  string `json:"encoding,omitempty" jsonschema:"text encoding of the file, or auto to detect it (default utf-8)"`
}

// PartOutput describes one part file.
type PartOutput struct {
	Part      int    `json:"part"`
	Path      string `json:"path"`
	FirstLine int    `json:"first_line,omitempty"`
	LastLine  int    `json:"last_line,omitempty"`
	Lines     int    `json:"lines"`
}

// SplitOutput is the output schema for both tools.
type SplitOutput struct {
	RunID      string       `json:"run_id,omitempty"`
	Source     string       `json:"source"`
	TotalLines int          `json:"total_lines"`
	Parts      []PartOutput `json:"parts"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "split_file",
		Description: "Split a text file's lines into N evenly sized part files named " +
			"{name}_part{i}.txt. The first (lines mod N) parts get one extra line.",
	}, s.handleSplitFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "plan_split",
		Description: "Show the line ranges and file names a split would produce, without writing anything",
	}, s.handlePlanSplit)
}

// handleSplitFile handles the split_file tool invocation.
func (s *Server) handleSplitFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SplitInput,
) (*mcp.CallToolResult, SplitOutput, error) {
	result, err := s.ports.Split.Split(ctx, toRequest(input), nil)
	if err != nil {
		return splitFailure(err)
	}

	return nil, SplitOutput{
		RunID:      result.RunID,
		Source:     result.SourcePath,
		TotalLines: result.TotalLines,
		Parts:      toParts(result.Outputs),
	}, nil
}

// handlePlanSplit handles the plan_split tool invocation.
func (s *Server) handlePlanSplit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SplitInput,
) (*mcp.CallToolResult, SplitOutput, error) {
	plan, err := s.ports.Split.Plan(ctx, toRequest(input))
	if err != nil {
		return splitFailure(err)
	}

	return nil, SplitOutput{
		Source:     plan.SourcePath,
		TotalLines: plan.TotalLines,
		Parts:      toParts(plan.Outputs),
	}, nil
}

// splitFailure reports user-correctable split errors as tool errors so the
// assistant can read them; anything else fails the request.
func splitFailure(err error) (*mcp.CallToolResult, SplitOutput, error) {
	if !domain.IsSplitError(err) {
		return nil, SplitOutput{}, err
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}, SplitOutput{Parts: []PartOutput{}}, nil
}

func toRequest(input SplitInput) domain.SplitRequest {
	return domain.SplitRequest{
		Path:      localPath(input.Path),
		Parts:     input.Parts,
		OutputDir: localPath(input.OutputDir),
		Encoding:  input.Encoding,
	}
}

func toParts(outputs []domain.OutputFile) []PartOutput {
	parts := make([]PartOutput, len(outputs))
	for i, out := range outputs {
		parts[i] = PartOutput{
			Part:  out.Index + 1,
			Path:  out.Path,
			Lines: out.Lines(),
		}
		if out.Lines() > 0 {
			parts[i].FirstLine = out.Start + 1
			parts[i].LastLine = out.End
		}
	}
	return parts
}
