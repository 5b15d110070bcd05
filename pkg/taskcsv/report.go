package taskcsv

// RowIssue describes a row that was skipped or partially salvaged.
type RowIssue struct {
	Row    int    `json:"row"` // 1-based, counting the header as row 1
	Reason string `json:"reason"`
}

// Report aggregates the per-row outcome of a decode so callers can surface
// what was dropped instead of losing rows silently.
type Report struct {
	Loaded  int        `json:"loaded"`
	Skipped []RowIssue `json:"skipped,omitempty"`
	Notes   []RowIssue `json:"notes,omitempty"`
}

// Skip records a dropped row.
func (r *Report) Skip(row int, reason string) {
	r.Skipped = append(r.Skipped, RowIssue{Row: row, Reason: reason})
}

// Note records a salvaged field on a row that was still loaded.
func (r *Report) Note(row int, reason string) {
	r.Notes = append(r.Notes, RowIssue{Row: row, Reason: reason})
}

// Clean reports whether every row decoded without issue.
func (r Report) Clean() bool {
	return len(r.Skipped) == 0 && len(r.Notes) == 0
}
