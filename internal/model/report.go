package model

import "time"

// Snapshot is a point-in-time report of a mutation testing session,
// persisted by the report store so runs can be compared over time.
type Snapshot struct {
	TakenAt    time.Time          `yaml:"taken_at"`
	Summary    *SummarySnapshot   `yaml:"summary,omitempty"`
	Survivors  []SurvivorSnapshot `yaml:"survivors,omitempty"`
	Suggestion []ModuleGapEntry   `yaml:"suggestion,omitempty"`
}

// SummarySnapshot is the YAML shape of a Summary. Raw text is dropped
// on purpose; snapshots record facts, not tool formatting.
type SummarySnapshot struct {
	Total      int `yaml:"total"`
	Killed     int `yaml:"killed"`
	Survived   int `yaml:"survived"`
	Timeout    int `yaml:"timeout"`
	Suspicious int `yaml:"suspicious"`
}

// SurvivorSnapshot is the YAML shape of a Survivor.
type SurvivorSnapshot struct {
	ID       string `yaml:"id"`
	Location string `yaml:"location"`
}

// ModuleGapEntry is the YAML shape of a ModuleGap.
type ModuleGapEntry struct {
	Module string `yaml:"module"`
	Count  int    `yaml:"count"`
}

// NewSnapshot assembles a Snapshot from parsed session data.
func NewSnapshot(summary *Summary, survivors []Survivor, gaps []ModuleGap) Snapshot {
	snapshot := Snapshot{TakenAt: time.Now().UTC()}

	if summary != nil {
		snapshot.Summary = &SummarySnapshot{
			Total:      summary.Total,
			Killed:     summary.Killed,
			Survived:   summary.Survived,
			Timeout:    summary.Timeout,
			Suspicious: summary.Suspicious,
		}
	}

	for _, survivor := range survivors {
		snapshot.Survivors = append(snapshot.Survivors, SurvivorSnapshot{
			ID:       survivor.ID,
			Location: survivor.Location,
		})
	}

	for _, gap := range gaps {
		snapshot.Suggestion = append(snapshot.Suggestion, ModuleGapEntry{
			Module: gap.Module,
			Count:  gap.Count,
		})
	}

	return snapshot
}
