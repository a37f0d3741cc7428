package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/textscope/internal/model"
)

// RenderHistory prints a snapshot table followed by a reading-ease
// sparkline across the listed snapshots.
func RenderHistory(w io.Writer, snapshots []model.Snapshot) error {
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "No snapshots found.")
		return err
	}

	headers := []string{"ID", "Created", "Label", "Words", "Sentences", "Ease", "Grade", "Level"}
	rows := make([][]string, 0, len(snapshots))
	ease := make([]float64, 0, len(snapshots))
	for _, snap := range snapshots {
		label := snap.Label
		if label == "" {
			label = "-"
		}
		level := snap.Stats.ReadabilityLevel
		if level == "" {
			level = "n/a"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", snap.ID),
			snap.CreatedAt.Format("2006-01-02 15:04"),
			label,
			fmt.Sprintf("%d", snap.Stats.Words),
			fmt.Sprintf("%d", snap.Stats.Sentences),
			fmt.Sprintf("%.1f", snap.Stats.FleschReadingEase),
			fmt.Sprintf("%.1f", snap.Stats.FleschKincaidGrade),
			level,
		})
		ease = append(ease, snap.Stats.FleschReadingEase)
	}

	rightAlign := map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Reading ease %s\n", Sparkline(ease)); err != nil {
		return err
	}
	return nil
}
