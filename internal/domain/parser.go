// Package domain implements the orchestration core: output parsing,
// suggestion ranking, and the operation orchestrator.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	m "mutman.dev/pkg/mutman/internal/model"
)

// ParseError reports tool output that matched no recognized format for
// the requested operation.
type ParseError struct {
	Operation string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Operation, e.Reason)
}

// Count labels recognized in results output. "timed out" appears in
// older mutmut releases, "timeout" in newer ones.
var summaryPatterns = map[string][]*regexp.Regexp{
	"total": {
		regexp.MustCompile(`(?i)\btotal\b[^0-9\n,]*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s+(?:mutants\s+)?total\b`),
	},
	"killed": {
		regexp.MustCompile(`(?i)\bkilled\b[^0-9\n,]*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s+killed\b`),
	},
	"survived": {
		regexp.MustCompile(`(?i)\bsurvived\b[^0-9\n,]*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s+survived\b`),
	},
	"timeout": {
		regexp.MustCompile(`(?i)\btime(?:d\s+)?out\b[^0-9\n,]*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s+time(?:d\s+)?out\b`),
	},
	"suspicious": {
		regexp.MustCompile(`(?i)\bsuspicious\b[^0-9\n,]*?(\d+)`),
		regexp.MustCompile(`(?i)(\d+)\s+suspicious\b`),
	},
}

// ParseResults extracts the per-category mutant counts from a results
// invocation. Output with no recognizable count at all is a ParseError;
// silent wrong numbers are worse than a surfaced failure.
func ParseResults(stdout string) (m.Summary, error) {
	summary := m.Summary{Raw: stdout}
	matched := false

	extract := func(label string) (int, bool) {
		for _, pattern := range summaryPatterns[label] {
			match := pattern.FindStringSubmatch(stdout)
			if match == nil {
				continue
			}

			value, err := strconv.Atoi(match[1])
			if err != nil || value < 0 {
				continue
			}

			return value, true
		}

		return 0, false
	}

	totalExplicit := false

	if value, ok := extract("total"); ok {
		summary.Total = value
		matched = true
		totalExplicit = true
	}

	if value, ok := extract("killed"); ok {
		summary.Killed = value
		matched = true
	}

	if value, ok := extract("survived"); ok {
		summary.Survived = value
		matched = true
	}

	if value, ok := extract("timeout"); ok {
		summary.Timeout = value
		matched = true
	}

	if value, ok := extract("suspicious"); ok {
		summary.Suspicious = value
		matched = true
	}

	if !matched {
		return m.Summary{}, &ParseError{Operation: "results", Reason: "unrecognized results format"}
	}

	// Older mutmut omits an explicit total; derive one from the
	// category sum. An explicit total is kept verbatim even when the
	// categories disagree with it; the tool owns its arithmetic.
	if !totalExplicit {
		summary.Total = summary.Killed + summary.Survived + summary.Timeout + summary.Suspicious
	}

	return summary, nil
}

// survivorLine matches the classic "SURVIVED: <ref>" listing emitted by
// mutmut and by the original report scripts.
var survivorLine = regexp.MustCompile(`^SURVIVED:\s*(\S+)`)

// mutantStatusLine matches the mutmut 3.x results listing, one mutant
// per line: "<module>.<func>__mutmut_<n>: survived".
var mutantStatusLine = regexp.MustCompile(`^(\S+?__mutmut_\d+):\s*survived\b`)

// ParseSurvivors scans stdout line by line for surviving mutants,
// preserving emission order. Malformed lines are skipped, never fatal;
// a listing with zero matches is a valid empty result.
func ParseSurvivors(stdout string) []m.Survivor {
	var survivors []m.Survivor

	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if match := survivorLine.FindStringSubmatch(line); match != nil {
			ref := strings.TrimSuffix(match[1], ":")
			if ref == "" {
				continue
			}

			survivors = append(survivors, m.Survivor{ID: ref, Location: ref})

			continue
		}

		if match := mutantStatusLine.FindStringSubmatch(line); match != nil {
			id := match[1]
			location := id
			if idx := strings.Index(id, "__mutmut_"); idx > 0 {
				location = id[:idx]
			}

			survivors = append(survivors, m.Survivor{ID: id, Location: location})
		}
	}

	return survivors
}

// Passthrough selects the opaque status text for operations whose
// output is not parsed: stdout when present, stderr as a fallback on
// nonzero exit.
func Passthrough(result m.ProcessResult) string {
	if strings.TrimSpace(result.Stdout) != "" {
		return result.Stdout
	}

	if result.ExitCode != 0 {
		return result.Stderr
	}

	return result.Stdout
}
