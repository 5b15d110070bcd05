package usecase

import (
	"time"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/internal/tasklist/store"
	"shared-task-tracker/pkg/dateutil"
	pkgLog "shared-task-tracker/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	store     *store.Store
	source    repository.Source
	snapshots repository.SnapshotStore
	clock     *dateutil.Clock
	owners    []model.Owner
	now       func() time.Time
}

// New creates a new task list UseCase instance.
func New(
	l pkgLog.Logger,
	st *store.Store,
	source repository.Source,
	snapshots repository.SnapshotStore,
	clock *dateutil.Clock,
	owners []model.Owner,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		store:     st,
		source:    source,
		snapshots: snapshots,
		clock:     clock,
		owners:    owners,
		now:       now,
	}
}

func (uc *implUseCase) knownOwner(owner model.Owner) bool {
	for _, o := range uc.owners {
		if o == owner {
			return true
		}
	}
	return false
}
