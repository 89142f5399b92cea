// Package model defines the data structures for mutmut orchestration.
package model

import "time"

// Path represents a file system path.
type Path string

// ExecutionContext describes where and how the mutation tool is invoked.
// It is built once per operation call and never mutated afterwards.
type ExecutionContext struct {
	// Executable is the resolved mutation tool binary. When no virtual
	// environment is supplied this is the bare tool name, looked up on
	// PATH at spawn time.
	Executable string
	// WorkDir is the working directory for the subprocess. Empty means
	// the current directory of this process.
	WorkDir Path
	// Env holds environment overrides merged on top of the parent
	// process environment. Overrides win on key collision.
	Env map[string]string
}

// Invocation is a single subprocess request: the tool arguments, the
// execution context, and an optional timeout. Immutable once constructed.
type Invocation struct {
	Args    []string
	Context ExecutionContext
	// Timeout bounds the subprocess lifetime. Zero disables the bound.
	Timeout time.Duration
}

// ProcessResult captures the complete output of one subprocess run.
// A nonzero ExitCode is not an error at this layer; mutation tools exit
// nonzero whenever mutants survive.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}
