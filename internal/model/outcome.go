package model

// FailureKind classifies an operation failure. Every failure crossing
// the orchestrator boundary carries exactly one of these.
type FailureKind string

const (
	// FailureValidation means a required argument was missing or
	// malformed; no subprocess was spawned.
	FailureValidation FailureKind = "validation"
	// FailureEnvironment means the supplied venv path did not resolve
	// to a usable executable context.
	FailureEnvironment FailureKind = "environment"
	// FailureLaunch means the tool binary could not be started at all.
	FailureLaunch FailureKind = "launch"
	// FailureTimeout means the subprocess exceeded its time budget.
	FailureTimeout FailureKind = "timeout"
	// FailureParse means the tool ran but its output matched no
	// recognized format for the requested operation.
	FailureParse FailureKind = "parse"
	// FailureTool means the tool exited nonzero without producing any
	// structured data.
	FailureTool FailureKind = "tool"
)

// Outcome is the single return shape of every orchestrator operation.
// Exactly one payload field is populated on success; Kind is empty on
// success and set on failure.
type Outcome struct {
	OK      bool
	Kind    FailureKind
	Message string
	// Stderr carries raw tool stderr on tool and process failures so a
	// human can diagnose environment issues.
	Stderr string

	Summary     *Summary
	Survivors   []Survivor
	Gaps        []ModuleGap
	Prioritized []PrioritizedSurvivor
	Text        string
}

// SuccessText wraps an opaque status string in a successful Outcome.
func SuccessText(text string) Outcome {
	return Outcome{OK: true, Text: text}
}

// SuccessSummary wraps a parsed results summary in a successful Outcome.
func SuccessSummary(summary Summary) Outcome {
	return Outcome{OK: true, Summary: &summary}
}

// SuccessSurvivors wraps a survivor listing in a successful Outcome.
func SuccessSurvivors(survivors []Survivor) Outcome {
	return Outcome{OK: true, Survivors: survivors}
}

// SuccessGaps wraps a ranked coverage-gap suggestion in a successful
// Outcome. Text carries the rendered human-readable form.
func SuccessGaps(gaps []ModuleGap, rendered string) Outcome {
	return Outcome{OK: true, Gaps: gaps, Text: rendered}
}

// SuccessPrioritized wraps a prioritized survivor listing in a
// successful Outcome.
func SuccessPrioritized(prioritized []PrioritizedSurvivor) Outcome {
	return Outcome{OK: true, Prioritized: prioritized}
}

// Fail builds a failure Outcome with the given kind and message.
func Fail(kind FailureKind, message string) Outcome {
	return Outcome{Kind: kind, Message: message}
}

// FailStderr builds a failure Outcome that also surfaces raw stderr.
func FailStderr(kind FailureKind, message, stderr string) Outcome {
	return Outcome{Kind: kind, Message: message, Stderr: stderr}
}
