package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	m "mutman.dev/pkg/mutman/internal/model"
)

// CompareSnapshots renders a unified diff between the survivor lists of
// two snapshots, oldest first. An empty string means the survivor set
// did not change.
func CompareSnapshots(before, after m.Snapshot) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        survivorLines(before),
		B:        survivorLines(after),
		FromFile: "baseline",
		FromDate: before.TakenAt.Format("2006-01-02 15:04:05"),
		ToFile:   "current",
		ToDate:   after.TakenAt.Format("2006-01-02 15:04:05"),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff snapshots: %w", err)
	}

	return text, nil
}

func survivorLines(snapshot m.Snapshot) []string {
	lines := make([]string, 0, len(snapshot.Survivors))
	for _, survivor := range snapshot.Survivors {
		lines = append(lines, survivor.ID+"\n")
	}

	return lines
}
