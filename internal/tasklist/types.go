package tasklist

import (
	"shared-task-tracker/internal/model"
	"shared-task-tracker/pkg/taskcsv"
)

// AddInput carries a new task submission.
type AddInput struct {
	Owner    model.Owner
	Name     string
	Kind     model.TaskKind
	Amount   float64
	Deadline string
}

type AddOutput struct {
	Task model.Task
}

type SetDoneInput struct {
	ID   int
	Done bool
}

type SetDoneOutput struct {
	Task model.Task
}

type ListInput struct {
	Owner model.Owner // empty = all owners
}

type ListOutput struct {
	Tasks []model.Task
}

// Reminder is an incomplete task annotated with how many whole days overdue
// it is. OverdueDays is never negative; 0 means due today or not yet due.
type Reminder struct {
	Task        model.Task
	OverdueDays int
}

type RemindersOutput struct {
	Reminders []Reminder
}

// EarningsOutput holds the three independent earnings windows for done work
// tasks, all computed against the canonical current date.
type EarningsOutput struct {
	Today   string
	Daily   float64
	Weekly  float64
	Monthly float64
}

type ReloadInput struct {
	// Force replaces the list even when unsaved local edits exist.
	Force bool
}

type ReloadOutput struct {
	Tasks    []model.Task
	Report   taskcsv.Report
	Fallback bool // true when the durable snapshot was used instead of the remote
}

type PushInput struct {
	// Token is the session-scoped remote access token, required by
	// token-authenticated sources.
	Token string
}

type PushOutput struct {
	Saved int // number of tasks written
}

type TodayOutput struct {
	CanonicalDate string
	DisplayDate   string
}
