package tasklist

import (
	"context"

	"shared-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the task list domain.
type UseCase interface {
	// Add creates a new task for the calling user's partition.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// SetDone toggles a task's done state, stamping or clearing its
	// completion date with the canonical current date.
	SetDone(ctx context.Context, sc model.Scope, input SetDoneInput) (SetDoneOutput, error)

	// List returns the tasks, optionally filtered to one owner.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Reminders returns incomplete tasks annotated with overdue days, most
	// overdue first.
	Reminders(ctx context.Context, sc model.Scope) (RemindersOutput, error)

	// Earnings sums done work tasks over the day, ISO-week and month
	// windows containing the canonical current date.
	Earnings(ctx context.Context, sc model.Scope) (EarningsOutput, error)

	// Reload replaces the list from the remote source. Unless forced, the
	// replace is skipped while unsaved local edits exist. On remote failure
	// the last durable snapshot is adopted instead.
	Reload(ctx context.Context, sc model.Scope, input ReloadInput) (ReloadOutput, error)

	// Push encodes the list as CSV and saves it through the remote source,
	// when the source supports writing.
	Push(ctx context.Context, sc model.Scope, input PushInput) (PushOutput, error)

	// ExportCSV renders the current list as CSV text.
	ExportCSV(ctx context.Context, sc model.Scope) (string, error)

	// Today returns the canonical and display forms of the current date.
	Today(ctx context.Context) TodayOutput
}
