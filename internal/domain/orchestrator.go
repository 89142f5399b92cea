package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mutman.dev/pkg/mutman/internal/adapter"
	m "mutman.dev/pkg/mutman/internal/model"
)

// ValidationError reports a required argument that is missing or
// malformed. It is raised before any subprocess is spawned.
type ValidationError struct {
	Argument string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Argument, e.Reason)
}

// Config carries the orchestrator's tunables.
type Config struct {
	// RunTimeout bounds run and rerun invocations. Zero disables it.
	RunTimeout time.Duration
	// QueryTimeout bounds results, survivors, show and clean
	// invocations. Zero disables it.
	QueryTimeout time.Duration
	// WorkDir is the project directory subprocesses run in. Empty
	// means the current directory of this process.
	WorkDir m.Path
	// CachePath is where the tool keeps its mutation cache, used only
	// by the clean fallback.
	CachePath m.Path
}

// Orchestrator composes the environment resolver, process runner and
// output parsers into the supported operations. It holds no per-call
// state; every operation builds its context fresh and discards it.
//
// No operation returns a Go error: every failure path is translated to
// a failure Outcome before crossing the boundary to the caller.
type Orchestrator struct {
	resolver adapter.EnvResolver
	runner   adapter.ProcessRunner
	cache    adapter.CacheAdapter
	config   Config
}

// NewOrchestrator creates an Orchestrator with the provided dependencies.
func NewOrchestrator(resolver adapter.EnvResolver, runner adapter.ProcessRunner, cache adapter.CacheAdapter, config Config) *Orchestrator {
	if config.CachePath == "" {
		config.CachePath = adapter.DefaultCachePath
	}

	return &Orchestrator{
		resolver: resolver,
		runner:   runner,
		cache:    cache,
		config:   config,
	}
}

// Run starts a full mutation testing session on target. The test
// command is forwarded as the tool's runner; options are free-form
// extra arguments.
func (o *Orchestrator) Run(ctx context.Context, target, testCommand, options, venvPath string) m.Outcome {
	if strings.TrimSpace(target) == "" {
		return m.Fail(m.FailureValidation, "target is required")
	}

	args := []string{"run", target}
	if strings.TrimSpace(testCommand) != "" {
		args = append(args, "--runner", testCommand)
	}

	args = append(args, strings.Fields(options)...)

	result, outcome := o.invoke(ctx, args, m.Path(venvPath), o.config.RunTimeout)
	if outcome != nil {
		return *outcome
	}

	return o.passOrFail("run", result)
}

// Results fetches and parses the summary of the last run.
func (o *Orchestrator) Results(ctx context.Context, venvPath string) m.Outcome {
	result, outcome := o.invoke(ctx, []string{"results"}, m.Path(venvPath), o.config.QueryTimeout)
	if outcome != nil {
		return *outcome
	}

	summary, err := ParseResults(result.Stdout)
	if err != nil {
		if result.ExitCode != 0 {
			return m.FailStderr(m.FailureTool,
				fmt.Sprintf("mutation tool exited with code %d and produced no recognizable summary", result.ExitCode),
				result.Stderr)
		}

		return m.Fail(m.FailureParse, err.Error())
	}

	return m.SuccessSummary(summary)
}

// Survivors lists the surviving mutants of the last run in the order
// the tool emitted them.
func (o *Orchestrator) Survivors(ctx context.Context, venvPath string) m.Outcome {
	survivors, outcome := o.fetchSurvivors(ctx, m.Path(venvPath))
	if outcome != nil {
		return *outcome
	}

	return m.SuccessSurvivors(survivors)
}

// Suggest ranks the modules most in need of additional test coverage,
// derived from the current survivor listing. The survivors are fetched
// once within this call; no second subprocess is spawned for ranking.
func (o *Orchestrator) Suggest(ctx context.Context, venvPath string) m.Outcome {
	survivors, outcome := o.fetchSurvivors(ctx, m.Path(venvPath))
	if outcome != nil {
		return *outcome
	}

	gaps := RankGaps(survivors)

	return m.SuccessGaps(gaps, RenderSuggestion(gaps))
}

// PrioritizeSurvivors scores the current survivors by likely
// materiality so trivial logging mutants sink to the bottom.
func (o *Orchestrator) PrioritizeSurvivors(ctx context.Context, venvPath string) m.Outcome {
	survivors, outcome := o.fetchSurvivors(ctx, m.Path(venvPath))
	if outcome != nil {
		return *outcome
	}

	prioritized := Prioritize(survivors)

	result := m.SuccessPrioritized(prioritized)
	if len(prioritized) == 0 {
		result.Text = "No surviving mutants found."
	}

	return result
}

// Rerun re-tests a specific surviving mutant, or every current
// survivor when mutationID is empty.
func (o *Orchestrator) Rerun(ctx context.Context, mutationID, venvPath string) m.Outcome {
	args := []string{"run", "--rerun-all"}
	if strings.TrimSpace(mutationID) != "" {
		args = []string{"run", "--rerun", mutationID}
	}

	result, outcome := o.invoke(ctx, args, m.Path(venvPath), o.config.RunTimeout)
	if outcome != nil {
		return *outcome
	}

	return o.passOrFail("rerun", result)
}

// Show fetches the code diff for a specific mutant.
func (o *Orchestrator) Show(ctx context.Context, mutationID, venvPath string) m.Outcome {
	if strings.TrimSpace(mutationID) == "" {
		return m.Fail(m.FailureValidation, "mutation_id is required")
	}

	result, outcome := o.invoke(ctx, []string{"show", mutationID}, m.Path(venvPath), o.config.QueryTimeout)
	if outcome != nil {
		return *outcome
	}

	return o.passOrFail("show", result)
}

// Clean deletes the tool's persisted mutation cache. Irreversible; the
// caller is responsible for intentionality. When the tool binary is
// missing entirely the cache file is removed directly instead.
func (o *Orchestrator) Clean(ctx context.Context, venvPath string) m.Outcome {
	result, outcome := o.invoke(ctx, []string{"clean"}, m.Path(venvPath), o.config.QueryTimeout)
	if outcome != nil {
		if outcome.Kind == m.FailureLaunch {
			return o.cleanFallback(*outcome)
		}

		return *outcome
	}

	if result.ExitCode != 0 {
		return m.FailStderr(m.FailureTool,
			fmt.Sprintf("clean exited with code %d", result.ExitCode),
			result.Stderr)
	}

	text := Passthrough(result)
	if strings.TrimSpace(text) == "" {
		text = "Mutation cache cleared."
	}

	return m.SuccessText(text)
}

// cleanFallback removes the cache file directly when the tool itself
// cannot be launched.
func (o *Orchestrator) cleanFallback(launchFailure m.Outcome) m.Outcome {
	if !o.cache.Exists(o.config.CachePath) {
		return launchFailure
	}

	if err := o.cache.Remove(o.config.CachePath); err != nil {
		slog.Error("cache fallback removal failed", "path", o.config.CachePath, "error", err)
		return launchFailure
	}

	slog.Info("removed mutation cache directly", "path", o.config.CachePath)

	return m.SuccessText(fmt.Sprintf("Mutation cache %s removed.", o.config.CachePath))
}

// fetchSurvivors runs the survivors subcommand and parses its listing.
// The second return value is non-nil when the invocation failed.
func (o *Orchestrator) fetchSurvivors(ctx context.Context, venvPath m.Path) ([]m.Survivor, *m.Outcome) {
	result, outcome := o.invoke(ctx, []string{"survivors"}, venvPath, o.config.QueryTimeout)
	if outcome != nil {
		return nil, outcome
	}

	survivors := ParseSurvivors(result.Stdout)

	if len(survivors) == 0 && result.ExitCode != 0 && strings.TrimSpace(result.Stdout) == "" {
		failure := m.FailStderr(m.FailureTool,
			fmt.Sprintf("mutation tool exited with code %d and listed no survivors", result.ExitCode),
			result.Stderr)

		return nil, &failure
	}

	return survivors, nil
}

// invoke resolves the environment and runs one tool subprocess. The
// returned Outcome pointer is non-nil when resolution or the spawn
// failed; the caller forwards it unchanged.
func (o *Orchestrator) invoke(ctx context.Context, args []string, venvPath m.Path, timeout time.Duration) (m.ProcessResult, *m.Outcome) {
	execCtx, err := o.resolver.Resolve(venvPath)
	if err != nil {
		failure := o.failureFrom(err)
		return m.ProcessResult{}, &failure
	}

	execCtx.WorkDir = o.config.WorkDir

	invocation := m.Invocation{
		Args:    args,
		Context: execCtx,
		Timeout: timeout,
	}

	slog.Debug("invoking mutation tool",
		"executable", execCtx.Executable,
		"args", args,
		"timeout", timeout,
	)

	result, err := o.runner.Run(ctx, invocation)
	if err != nil {
		failure := o.failureFrom(err)
		return m.ProcessResult{}, &failure
	}

	slog.Debug("mutation tool finished", "exit_code", result.ExitCode)

	return result, nil
}

// passOrFail applies the opaque-text contract: success carries the
// pass-through output, a nonzero exit becomes a tool failure with raw
// stderr attached.
func (o *Orchestrator) passOrFail(operation string, result m.ProcessResult) m.Outcome {
	if result.ExitCode == 0 {
		return m.SuccessText(Passthrough(result))
	}

	message := fmt.Sprintf("%s exited with code %d", operation, result.ExitCode)
	if text := strings.TrimSpace(Passthrough(result)); text != "" {
		message = message + ": " + text
	}

	return m.FailStderr(m.FailureTool, message, result.Stderr)
}

// failureFrom translates the typed errors of the lower layers into
// failure Outcomes. Unknown errors map to launch failures; nothing may
// escape the orchestrator as a raw error.
func (o *Orchestrator) failureFrom(err error) m.Outcome {
	var envErr *adapter.EnvironmentError
	if errors.As(err, &envErr) {
		return m.Fail(m.FailureEnvironment, envErr.Error())
	}

	var procErr *adapter.ProcessError
	if errors.As(err, &procErr) {
		switch procErr.Kind {
		case adapter.Timeout:
			return m.FailStderr(m.FailureTimeout,
				"mutation tool timed out: "+procErr.Cause.Error(),
				procErr.Partial.Stderr)
		case adapter.Canceled:
			// Caller-initiated; the taxonomy has no cancel bucket, and
			// like a timeout the bounded invocation ended before the
			// tool finished.
			return m.FailStderr(m.FailureTimeout,
				"mutation tool interrupted: "+procErr.Cause.Error(),
				procErr.Partial.Stderr)
		case adapter.LaunchFailure:
			return m.Fail(m.FailureLaunch, "mutation tool could not be started: "+procErr.Cause.Error())
		}
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return m.Fail(m.FailureValidation, valErr.Error())
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return m.Fail(m.FailureParse, parseErr.Error())
	}

	return m.Fail(m.FailureLaunch, err.Error())
}
