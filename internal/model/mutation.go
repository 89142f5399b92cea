package model

// Summary aggregates the per-category counts reported by a mutmut
// results run. The tool does not guarantee the categories add up to
// Total, so consumers must not assume equality.
type Summary struct {
	Total      int
	Killed     int
	Survived   int
	Timeout    int
	Suspicious int
	// Raw preserves the text the counts were extracted from.
	Raw string
}

// Survivor identifies a single surviving mutant as emitted by the tool.
type Survivor struct {
	// ID is the mutant identifier accepted by rerun/show subcommands.
	ID string
	// Location is a file:line or dotted module qualifier.
	Location string
	// Diff is the mutant's code diff when available, empty otherwise.
	Diff string
}

// ModuleGap is one entry of the test-coverage suggestion: a module and
// how many of its mutants survived.
type ModuleGap struct {
	Module string
	Count  int
}

// PrioritizedSurvivor is a survivor scored by likely materiality.
// Higher scores indicate mutants worth investigating first.
type PrioritizedSurvivor struct {
	Survivor Survivor
	Score    int
	Reason   string
}
