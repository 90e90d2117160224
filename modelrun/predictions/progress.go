package predictions

import (
	"regexp"
	"strconv"
	"strings"
)

// Progress is a point-in-time estimate of a prediction's completion,
// derived from its logs.
type Progress struct {
	// Percentage is the completed fraction, in [0.0, 1.0].
	Percentage float64

	// Current is the number of items processed so far.
	Current int

	// Total is the total number of items to process.
	Total int
}

// progressPattern matches a progress-bar line at its start:
// a percentage, the bar between pipes, then current/total counts.
var progressPattern = regexp.MustCompile(`^\s*(\d+)%\s*\|.+?\|\s*(\d+)/(\d+)`)

// progressFragment is the unanchored shape, used to detect lines that
// contain more than one bar-shaped report.
var progressFragment = regexp.MustCompile(`\d+%\s*\|.+?\|\s*\d+/\d+`)

// ParseProgress scans the log blob from the last line to the first and
// returns the progress from the most recent line matching the bar
// pattern. Logs are append-only and chronological, so the last match is
// the freshest report.
//
// ParseProgress never fails: it returns nil for empty logs, for logs
// with no matching line, and for a candidate line that is ambiguous
// (more than one bar-shaped fragment on the line — such lines are
// skipped rather than guessed at, and the scan continues).
func ParseProgress(logs string) *Progress {
	if logs == "" {
		return nil
	}

	lines := strings.Split(logs, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])

		m := progressPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if len(progressFragment.FindAllString(line, -1)) != 1 {
			continue
		}

		percentage, _ := strconv.Atoi(m[1])
		current, _ := strconv.Atoi(m[2])
		total, _ := strconv.Atoi(m[3])

		return &Progress{
			Percentage: float64(percentage) / 100.0,
			Current:    current,
			Total:      total,
		}
	}

	return nil
}
