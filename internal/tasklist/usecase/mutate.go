package usecase

import (
	"context"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
)

// Add appends a new task and persists the durable snapshot.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input tasklist.AddInput) (tasklist.AddOutput, error) {
	if !uc.knownOwner(input.Owner) {
		return tasklist.AddOutput{}, tasklist.ErrUnknownOwner
	}

	kind := input.Kind
	if kind == "" {
		kind = model.KindOther
	}

	task, err := uc.store.Add(input.Owner, input.Name, kind, input.Amount, input.Deadline)
	if err != nil {
		return tasklist.AddOutput{}, err
	}

	uc.l.Infof(ctx, "Add: user=%s owner=%s task=%q id=%d", sc.Username, input.Owner, task.Name, task.ID)
	uc.persistSnapshot(ctx)

	return tasklist.AddOutput{Task: task}, nil
}

// SetDone toggles completion, stamping or clearing the completion date with
// the canonical current date.
func (uc *implUseCase) SetDone(ctx context.Context, sc model.Scope, input tasklist.SetDoneInput) (tasklist.SetDoneOutput, error) {
	completedDate := ""
	if input.Done {
		completedDate = uc.clock.TodayISO(uc.now())
	}

	task, found := uc.store.SetDone(input.ID, input.Done, completedDate)
	if !found {
		return tasklist.SetDoneOutput{}, tasklist.ErrTaskNotFound
	}

	uc.l.Infof(ctx, "SetDone: user=%s id=%d done=%t", sc.Username, input.ID, input.Done)
	uc.persistSnapshot(ctx)

	return tasklist.SetDoneOutput{Task: task}, nil
}

// persistSnapshot writes the durable local copy after a mutation. Failures
// degrade to in-memory state only and are logged, not surfaced.
func (uc *implUseCase) persistSnapshot(ctx context.Context) {
	if uc.snapshots == nil {
		return
	}
	if err := uc.snapshots.Write(ctx, uc.store.Snapshot()); err != nil {
		uc.l.Warnf(ctx, "failed to persist local snapshot: %v", err)
	}
}
