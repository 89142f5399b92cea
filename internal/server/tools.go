// Package server exposes the orchestration operations as MCP tools.
package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"mutman.dev/pkg/mutman/internal/domain"
	m "mutman.dev/pkg/mutman/internal/model"
)

// RunMutmutInput is the MCP tool input for starting a mutation run.
type RunMutmutInput struct {
	Target      string `json:"target" jsonschema:"module or package to run mutation testing on"`
	TestCommand string `json:"test_command,omitempty" jsonschema:"test runner forwarded to the tool (default pytest)"`
	Options     string `json:"options,omitempty" jsonschema:"additional command-line options for the tool"`
	VenvPath    string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// RunMutmutResult is the MCP tool output for a mutation run.
type RunMutmutResult struct {
	Output string `json:"output" jsonschema:"raw tool output of the run"`
}

// RunMutmutTool defines the MCP tool schema for running mutation tests.
func RunMutmutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "run_mutmut",
		Description: "Run a full mutation testing session with mutmut on the specified target.",
	}
}

// RunMutmutHandler executes a mutation run request.
func RunMutmutHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[RunMutmutInput, RunMutmutResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RunMutmutInput) (*mcp.CallToolResult, RunMutmutResult, error) {
		testCommand := input.TestCommand
		if testCommand == "" {
			testCommand = "pytest"
		}

		outcome := orch.Run(ctx, input.Target, testCommand, input.Options, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), RunMutmutResult{}, nil
		}

		return nil, RunMutmutResult{Output: outcome.Text}, nil
	}
}

// ShowResultsInput is the MCP tool input for fetching the last summary.
type ShowResultsInput struct {
	VenvPath string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// ShowResultsResult is the MCP tool output carrying the parsed counts.
type ShowResultsResult struct {
	Total      int `json:"total" jsonschema:"total number of mutants"`
	Killed     int `json:"killed" jsonschema:"mutants detected by the test suite"`
	Survived   int `json:"survived" jsonschema:"mutants the test suite missed"`
	Timeout    int `json:"timeout" jsonschema:"mutants that timed out"`
	Suspicious int `json:"suspicious" jsonschema:"mutants with suspicious test behavior"`
}

// ShowResultsTool defines the MCP tool schema for fetching results.
func ShowResultsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "show_results",
		Description: "Display overall results from the last mutmut run as structured counts.",
	}
}

// ShowResultsHandler executes a results request.
func ShowResultsHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[ShowResultsInput, ShowResultsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShowResultsInput) (*mcp.CallToolResult, ShowResultsResult, error) {
		outcome := orch.Results(ctx, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), ShowResultsResult{}, nil
		}

		summary := outcome.Summary

		return nil, ShowResultsResult{
			Total:      summary.Total,
			Killed:     summary.Killed,
			Survived:   summary.Survived,
			Timeout:    summary.Timeout,
			Suspicious: summary.Suspicious,
		}, nil
	}
}

// ShowSurvivorsInput is the MCP tool input for listing survivors.
type ShowSurvivorsInput struct {
	VenvPath string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// SurvivorPayload is one surviving mutant in a tool response.
type SurvivorPayload struct {
	ID       string `json:"id" jsonschema:"mutant identifier"`
	Location string `json:"location" jsonschema:"file:line or dotted module qualifier"`
}

// ShowSurvivorsResult is the MCP tool output listing survivors.
type ShowSurvivorsResult struct {
	Survivors []SurvivorPayload `json:"survivors" jsonschema:"surviving mutants in tool emission order"`
	Count     int               `json:"count" jsonschema:"number of surviving mutants"`
}

// ShowSurvivorsTool defines the MCP tool schema for listing survivors.
func ShowSurvivorsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "show_survivors",
		Description: "List details of surviving mutations from the last mutmut run.",
	}
}

// ShowSurvivorsHandler executes a survivors request.
func ShowSurvivorsHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[ShowSurvivorsInput, ShowSurvivorsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShowSurvivorsInput) (*mcp.CallToolResult, ShowSurvivorsResult, error) {
		outcome := orch.Survivors(ctx, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), ShowSurvivorsResult{}, nil
		}

		result := ShowSurvivorsResult{Count: len(outcome.Survivors)}
		for _, survivor := range outcome.Survivors {
			result.Survivors = append(result.Survivors, SurvivorPayload{
				ID:       survivor.ID,
				Location: survivor.Location,
			})
		}

		return nil, result, nil
	}
}

// SuggestionInput is the MCP tool input for the coverage suggestion.
type SuggestionInput struct {
	VenvPath string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// ModuleGapPayload is one ranked module in the suggestion output.
type ModuleGapPayload struct {
	Module string `json:"module" jsonschema:"module or file with surviving mutants"`
	Count  int    `json:"count" jsonschema:"number of surviving mutants in the module"`
}

// SuggestionResult is the MCP tool output for the coverage suggestion.
type SuggestionResult struct {
	Suggestion string             `json:"suggestion" jsonschema:"human-readable ranked coverage advice"`
	Modules    []ModuleGapPayload `json:"modules" jsonschema:"modules ranked by surviving mutants, descending"`
}

// SuggestionTool defines the MCP tool schema for the coverage suggestion.
func SuggestionTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_test_suggestion",
		Description: "Rank the modules most in need of additional test coverage based on surviving mutants.",
	}
}

// SuggestionHandler executes a coverage suggestion request.
func SuggestionHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[SuggestionInput, SuggestionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SuggestionInput) (*mcp.CallToolResult, SuggestionResult, error) {
		outcome := orch.Suggest(ctx, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), SuggestionResult{}, nil
		}

		result := SuggestionResult{Suggestion: outcome.Text}
		for _, gap := range outcome.Gaps {
			result.Modules = append(result.Modules, ModuleGapPayload{Module: gap.Module, Count: gap.Count})
		}

		return nil, result, nil
	}
}

// RerunInput is the MCP tool input for rerunning survivors.
type RerunInput struct {
	MutationID string `json:"mutation_id,omitempty" jsonschema:"specific mutant to rerun; all survivors when omitted"`
	VenvPath   string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// RerunResult is the MCP tool output for a rerun.
type RerunResult struct {
	Output string `json:"output" jsonschema:"raw tool output of the rerun"`
}

// RerunTool defines the MCP tool schema for rerunning survivors.
func RerunTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "rerun_mutmut_on_survivor",
		Description: "Rerun mutmut on a specific surviving mutation, or on all survivors, after test updates.",
	}
}

// RerunHandler executes a rerun request.
func RerunHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[RerunInput, RerunResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RerunInput) (*mcp.CallToolResult, RerunResult, error) {
		outcome := orch.Rerun(ctx, input.MutationID, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), RerunResult{}, nil
		}

		return nil, RerunResult{Output: outcome.Text}, nil
	}
}

// CleanInput is the MCP tool input for clearing the mutation cache.
type CleanInput struct {
	VenvPath string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// CleanResult is the MCP tool output for clearing the cache.
type CleanResult struct {
	Output string `json:"output" jsonschema:"tool confirmation output"`
}

// CleanTool defines the MCP tool schema for clearing the cache.
func CleanTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "clean_mutmut_cache",
		Description: "Delete the persisted mutation cache. Irreversible; no confirmation is asked.",
	}
}

// CleanHandler executes a cache clean request.
func CleanHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[CleanInput, CleanResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CleanInput) (*mcp.CallToolResult, CleanResult, error) {
		outcome := orch.Clean(ctx, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), CleanResult{}, nil
		}

		return nil, CleanResult{Output: outcome.Text}, nil
	}
}

// ShowMutantInput is the MCP tool input for showing a mutant diff.
type ShowMutantInput struct {
	MutationID string `json:"mutation_id" jsonschema:"identifier of the mutant to show"`
	VenvPath   string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// ShowMutantResult is the MCP tool output carrying a mutant diff.
type ShowMutantResult struct {
	Diff string `json:"diff" jsonschema:"code diff of the mutant"`
}

// ShowMutantTool defines the MCP tool schema for showing a mutant diff.
func ShowMutantTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "show_mutant",
		Description: "Show the code diff and details for a specific mutant.",
	}
}

// ShowMutantHandler executes a show-mutant request.
func ShowMutantHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[ShowMutantInput, ShowMutantResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ShowMutantInput) (*mcp.CallToolResult, ShowMutantResult, error) {
		outcome := orch.Show(ctx, input.MutationID, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), ShowMutantResult{}, nil
		}

		return nil, ShowMutantResult{Diff: outcome.Text}, nil
	}
}

// PrioritizeInput is the MCP tool input for prioritizing survivors.
type PrioritizeInput struct {
	VenvPath string `json:"venv_path,omitempty" jsonschema:"path to the project virtual environment"`
}

// PrioritizedPayload is one scored survivor in a tool response.
type PrioritizedPayload struct {
	ID       string `json:"id" jsonschema:"mutant identifier"`
	Location string `json:"location" jsonschema:"file:line or dotted module qualifier"`
	Score    int    `json:"score" jsonschema:"materiality score, higher first"`
	Reason   string `json:"reason" jsonschema:"why the mutant was scored this way"`
}

// PrioritizeResult is the MCP tool output for prioritized survivors.
type PrioritizeResult struct {
	Prioritized []PrioritizedPayload `json:"prioritized" jsonschema:"survivors sorted by materiality score"`
	Message     string               `json:"message" jsonschema:"status message"`
}

// PrioritizeTool defines the MCP tool schema for prioritizing survivors.
func PrioritizeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "prioritize_survivors",
		Description: "Prioritize surviving mutants by likely materiality, deprioritizing log/debug-only changes.",
	}
}

// PrioritizeHandler executes a prioritization request.
func PrioritizeHandler(orch *domain.Orchestrator) mcp.ToolHandlerFor[PrioritizeInput, PrioritizeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PrioritizeInput) (*mcp.CallToolResult, PrioritizeResult, error) {
		outcome := orch.PrioritizeSurvivors(ctx, input.VenvPath)
		if !outcome.OK {
			return failureResult(outcome), PrioritizeResult{}, nil
		}

		result := PrioritizeResult{Message: "Survivors prioritized by likely materiality."}
		if outcome.Text != "" {
			result.Message = outcome.Text
		}

		for _, entry := range outcome.Prioritized {
			result.Prioritized = append(result.Prioritized, PrioritizedPayload{
				ID:       entry.Survivor.ID,
				Location: entry.Survivor.Location,
				Score:    entry.Score,
				Reason:   entry.Reason,
			})
		}

		return nil, result, nil
	}
}

// failureResult converts a failure Outcome into an MCP error result.
// Domain failures are reported through the tool result, never as Go
// errors; the collaborator only forwards them.
func failureResult(outcome m.Outcome) *mcp.CallToolResult {
	var text strings.Builder

	fmt.Fprintf(&text, "error (%s): %s", outcome.Kind, outcome.Message)

	if strings.TrimSpace(outcome.Stderr) != "" {
		fmt.Fprintf(&text, "\n\ntool stderr:\n%s", strings.TrimRight(outcome.Stderr, "\n"))
	}

	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text.String()}},
	}
}
