package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	m "mutman.dev/pkg/mutman/internal/model"
)

var trailingLine = regexp.MustCompile(`:\d+$`)

// ModuleOf reduces a survivor location to the module it belongs to.
// A trailing :line is stripped first. Dotted qualifiers then lose their
// last segment (the function name) when at least two segments remain;
// file paths group by the path itself.
func ModuleOf(location string) string {
	module := trailingLine.ReplaceAllString(location, "")

	if strings.ContainsAny(module, "/\\") {
		return module
	}

	if idx := strings.LastIndex(module, "."); idx > 0 {
		return module[:idx]
	}

	return module
}

// RankGaps groups survivors by module and ranks the groups by survivor
// count descending. Ties keep first-seen order, so the ranking is
// stable with respect to the tool's emission order.
func RankGaps(survivors []m.Survivor) []m.ModuleGap {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	var order []string

	for _, survivor := range survivors {
		module := ModuleOf(survivor.Location)
		if module == "" {
			continue
		}

		if _, seen := counts[module]; !seen {
			firstSeen[module] = len(order)
			order = append(order, module)
		}

		counts[module]++
	}

	gaps := make([]m.ModuleGap, 0, len(order))
	for _, module := range order {
		gaps = append(gaps, m.ModuleGap{Module: module, Count: counts[module]})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Count != gaps[j].Count {
			return gaps[i].Count > gaps[j].Count
		}

		return firstSeen[gaps[i].Module] < firstSeen[gaps[j].Module]
	})

	return gaps
}

// RenderSuggestion turns ranked gaps into the human-readable coverage
// advice returned by the suggestion operation.
func RenderSuggestion(gaps []m.ModuleGap) string {
	if len(gaps) == 0 {
		return "No surviving mutants. The test suite killed every mutation it was shown."
	}

	var b strings.Builder

	b.WriteString("Modules ranked by surviving mutants; start writing tests at the top:\n")

	for i, gap := range gaps {
		noun := "mutants"
		if gap.Count == 1 {
			noun = "mutant"
		}

		fmt.Fprintf(&b, "%d. %s (%d surviving %s)\n", i+1, gap.Module, gap.Count, noun)
	}

	b.WriteString("\nEach surviving mutant marks behavior no test currently asserts on.")

	return b.String()
}

// Keywords indicating a mutant likely only touches logging chatter.
var immaterialKeywords = []string{"log", "debug", "print", "logger", "logging"}

// Prioritize scores survivors by likely materiality: mutants in
// logging or debug output are unlikely to matter, everything else is.
// The sort is stable so equally scored survivors keep emission order.
func Prioritize(survivors []m.Survivor) []m.PrioritizedSurvivor {
	prioritized := make([]m.PrioritizedSurvivor, 0, len(survivors))

	for _, survivor := range survivors {
		entry := m.PrioritizedSurvivor{
			Survivor: survivor,
			Score:    1,
			Reason:   "potentially material logic, prioritize",
		}

		lowered := strings.ToLower(survivor.Location + " " + survivor.ID)
		for _, keyword := range immaterialKeywords {
			if strings.Contains(lowered, keyword) {
				entry.Score = 0
				entry.Reason = "likely log or debug only, deprioritized"

				break
			}
		}

		prioritized = append(prioritized, entry)
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].Score > prioritized[j].Score
	})

	return prioritized
}
