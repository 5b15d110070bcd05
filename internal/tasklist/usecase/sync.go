package usecase

import (
	"context"
	"fmt"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/pkg/taskcsv"
)

// Reload replaces the task list from the remote source. The remote is
// authoritative: a successful load overwrites the in-memory set. While
// unsaved local edits exist the replace is refused unless forced, so a
// background refresh cannot silently drop an edit.
func (uc *implUseCase) Reload(ctx context.Context, sc model.Scope, input tasklist.ReloadInput) (tasklist.ReloadOutput, error) {
	if uc.store.Dirty() && !input.Force {
		return tasklist.ReloadOutput{}, tasklist.ErrLocalEdits
	}

	tasks, report, err := uc.source.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Reload: remote load failed, trying local snapshot: %v", err)
		return uc.reloadFromSnapshot(ctx, err)
	}

	uc.store.ReplaceAll(tasks)
	uc.persistSnapshot(ctx)

	if !report.Clean() {
		uc.l.Warnf(ctx, "Reload: %d rows loaded, %d skipped, %d salvaged", report.Loaded, len(report.Skipped), len(report.Notes))
	} else {
		uc.l.Infof(ctx, "Reload: %d rows loaded", report.Loaded)
	}

	return tasklist.ReloadOutput{Tasks: uc.store.Snapshot(), Report: report}, nil
}

// reloadFromSnapshot adopts the last durable snapshot when the remote is
// unreachable or malformed. Keeps showing last good state; nothing fatal.
func (uc *implUseCase) reloadFromSnapshot(ctx context.Context, loadErr error) (tasklist.ReloadOutput, error) {
	if uc.snapshots == nil {
		return tasklist.ReloadOutput{}, loadErr
	}

	tasks, err := uc.snapshots.Read(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Reload: local snapshot unavailable: %v", err)
		return tasklist.ReloadOutput{}, fmt.Errorf("remote load failed and no local snapshot: %w", loadErr)
	}

	uc.store.ReplaceAll(tasks)
	uc.l.Infof(ctx, "Reload: adopted local snapshot with %d tasks", len(tasks))

	return tasklist.ReloadOutput{
		Tasks:    uc.store.Snapshot(),
		Report:   taskcsv.Report{Loaded: len(tasks)},
		Fallback: true,
	}, nil
}

// Push writes the full list back through the remote source.
func (uc *implUseCase) Push(ctx context.Context, sc model.Scope, input tasklist.PushInput) (tasklist.PushOutput, error) {
	writable, ok := uc.source.(repository.WritableSource)
	if !ok {
		return tasklist.PushOutput{}, tasklist.ErrReadOnlySource
	}

	tasks := uc.store.Snapshot()
	if err := writable.Save(ctx, tasks, input.Token); err != nil {
		return tasklist.PushOutput{}, err
	}

	uc.store.MarkSaved()
	uc.l.Infof(ctx, "Push: user=%s saved %d tasks", sc.Username, len(tasks))

	return tasklist.PushOutput{Saved: len(tasks)}, nil
}

// ExportCSV renders the current list in the remote file format.
func (uc *implUseCase) ExportCSV(ctx context.Context, sc model.Scope) (string, error) {
	return taskcsv.Encode(uc.store.Snapshot()), nil
}
