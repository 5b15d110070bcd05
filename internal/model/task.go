package model

// TaskKind categorizes a task. Only work tasks carry a monetary amount.
type TaskKind string

const (
	KindWork  TaskKind = "work"
	KindOther TaskKind = "other"
)

// Owner is one of the two fixed task-list partitions, one per user.
type Owner string

// Task is a single chore or work item on the shared list.
// JSON field names mirror the CSV header so the durable snapshot and the
// remote file describe rows identically.
type Task struct {
	ID            int      `json:"id"`             // Unique, monotonically assigned within the list
	Name          string   `json:"task_name"`      // Free text
	Kind          TaskKind `json:"type"`           // "work" or a free-text category
	Amount        float64  `json:"amount"`         // Non-negative; zero for non-work tasks
	Deadline      string   `json:"deadline"`       // ISO calendar date, e.g. "2025-01-31"
	Done          bool     `json:"done"`
	CompletedDate string   `json:"completed_date"` // ISO calendar date; empty iff not done
	Owner         Owner    `json:"person"`
}

// IsWork reports whether the task counts toward earnings.
func (t Task) IsWork() bool {
	return t.Kind == KindWork
}
