// Package adapter contains process and infrastructure adapters for the
// mutman orchestrator.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	m "mutman.dev/pkg/mutman/internal/model"
)

// DefaultTool is the mutation tool binary invoked when no virtual
// environment is supplied; it is resolved on PATH at spawn time.
const DefaultTool = "mutmut"

// EnvResolver determines the executable context for invoking the
// mutation tool. Implementations must be read-only and idempotent.
type EnvResolver interface {
	// Resolve builds an ExecutionContext from an optional venv path.
	// An empty venvPath selects the ambient default tool.
	Resolve(venvPath m.Path) (m.ExecutionContext, error)
}

// EnvironmentError reports a venv path that does not contain a usable
// mutation tool executable.
type EnvironmentError struct {
	VenvPath m.Path
	Reason   string
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("invalid venv %q: %s", e.VenvPath, e.Reason)
}

// LocalEnvResolver resolves venv layouts on the local filesystem.
type LocalEnvResolver struct {
	tool string
}

// NewLocalEnvResolver constructs a LocalEnvResolver for the default tool.
func NewLocalEnvResolver() *LocalEnvResolver {
	return &LocalEnvResolver{tool: DefaultTool}
}

// Resolve validates the conventional venv layout (bin/ on POSIX,
// Scripts/ on Windows) and returns a context pointing at the tool
// binary inside it. Without a venv the bare tool name is returned.
func (r *LocalEnvResolver) Resolve(venvPath m.Path) (m.ExecutionContext, error) {
	if venvPath == "" {
		return m.ExecutionContext{Executable: r.tool}, nil
	}

	info, err := os.Stat(string(venvPath))
	if err != nil {
		return m.ExecutionContext{}, &EnvironmentError{VenvPath: venvPath, Reason: "directory does not exist"}
	}

	if !info.IsDir() {
		return m.ExecutionContext{}, &EnvironmentError{VenvPath: venvPath, Reason: "not a directory"}
	}

	executable := filepath.Join(string(venvPath), binDir(), toolBinary(r.tool))

	toolInfo, err := os.Stat(executable)
	if err != nil {
		return m.ExecutionContext{}, &EnvironmentError{
			VenvPath: venvPath,
			Reason:   fmt.Sprintf("%s not found at %s", r.tool, executable),
		}
	}

	if toolInfo.IsDir() || !isExecutable(toolInfo) {
		return m.ExecutionContext{}, &EnvironmentError{
			VenvPath: venvPath,
			Reason:   fmt.Sprintf("%s is not executable", executable),
		}
	}

	return m.ExecutionContext{
		Executable: executable,
		Env: map[string]string{
			"VIRTUAL_ENV": string(venvPath),
		},
	}, nil
}

func binDir() string {
	if runtime.GOOS == "windows" {
		return "Scripts"
	}

	return "bin"
}

func toolBinary(tool string) string {
	if runtime.GOOS == "windows" {
		return tool + ".exe"
	}

	return tool
}

func isExecutable(info os.FileInfo) bool {
	if runtime.GOOS == "windows" {
		return true
	}

	return info.Mode().Perm()&0o111 != 0
}
