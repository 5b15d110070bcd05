package repository

import (
	"context"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/pkg/taskcsv"
)

// Source is a remote store the CSV blob round-trips through. Load fetches
// and decodes the full task list; the report carries per-row decode issues.
type Source interface {
	Load(ctx context.Context) ([]model.Task, taskcsv.Report, error)
}

// WritableSource is a Source that also accepts the full list back. Token is
// the session-scoped access credential; sources that need none ignore it.
type WritableSource interface {
	Source
	Save(ctx context.Context, tasks []model.Task, token string) error
}

// SnapshotStore is the durable local fallback: it holds the last known good
// task list and is consulted when the Source fails.
type SnapshotStore interface {
	Write(ctx context.Context, tasks []model.Task) error
	Read(ctx context.Context) ([]model.Task, error)
}
