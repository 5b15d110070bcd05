package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/internal/tasklist/store"
	"shared-task-tracker/internal/tasklist/usecase"
	"shared-task-tracker/pkg/dateutil"
	"shared-task-tracker/pkg/taskcsv"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockSource struct {
	loadFunc func(ctx context.Context) ([]model.Task, taskcsv.Report, error)
}

func (m *mockSource) Load(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
	return m.loadFunc(ctx)
}

type mockWritableSource struct {
	mockSource
	saveFunc func(ctx context.Context, tasks []model.Task, token string) error
}

func (m *mockWritableSource) Save(ctx context.Context, tasks []model.Task, token string) error {
	return m.saveFunc(ctx, tasks, token)
}

type mockSnapshotStore struct {
	writeFunc func(ctx context.Context, tasks []model.Task) error
	readFunc  func(ctx context.Context) ([]model.Task, error)
}

func (m *mockSnapshotStore) Write(ctx context.Context, tasks []model.Task) error {
	if m.writeFunc == nil {
		return nil
	}
	return m.writeFunc(ctx, tasks)
}

func (m *mockSnapshotStore) Read(ctx context.Context) ([]model.Task, error) {
	if m.readFunc == nil {
		return nil, repository.ErrNoSnapshot
	}
	return m.readFunc(ctx)
}

var (
	testOwners = []model.Owner{"Alice", "Ben"}
	testScope  = model.Scope{Username: "alice"}
	// 2025-01-08 22:30 UTC is already 2025-01-09 in the canonical UTC+3 day.
	testNow = func() time.Time {
		return time.Date(2025, 1, 8, 22, 30, 0, 0, time.UTC)
	}
)

func newTestUseCase(st *store.Store, source repository.Source, snapshots repository.SnapshotStore) tasklist.UseCase {
	clock, err := dateutil.NewClock(3, "Africa/Nairobi")
	if err != nil {
		panic(err)
	}
	return usecase.New(mockLogger{}, st, source, snapshots, clock, testOwners, testNow)
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		st := store.New()
		uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

		out, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner:    "Alice",
			Name:     "Client report",
			Kind:     model.KindWork,
			Amount:   1500,
			Deadline: "2025-01-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != 1 || out.Task.Amount != 1500 {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("Unknown owner is rejected", func(t *testing.T) {
		st := store.New()
		uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

		_, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner:    "Mallory",
			Name:     "Anything",
			Deadline: "2025-01-15",
		})
		if !errors.Is(err, tasklist.ErrUnknownOwner) {
			t.Errorf("expected ErrUnknownOwner, got %v", err)
		}
		if st.Len() != 0 {
			t.Errorf("store should stay empty, has %d tasks", st.Len())
		}
	})

	t.Run("Empty kind defaults to other with zero amount", func(t *testing.T) {
		st := store.New()
		uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

		out, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner:    "Ben",
			Name:     "Sweep",
			Amount:   200,
			Deadline: "2025-01-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Kind != model.KindOther || out.Task.Amount != 0 {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("Mutation persists a snapshot", func(t *testing.T) {
		var written []model.Task
		snapshots := &mockSnapshotStore{
			writeFunc: func(ctx context.Context, tasks []model.Task) error {
				written = tasks
				return nil
			},
		}
		uc := newTestUseCase(store.New(), &mockSource{}, snapshots)

		if _, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner: "Alice", Name: "Sweep", Deadline: "2025-01-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(written) != 1 {
			t.Errorf("expected snapshot write with 1 task, got %d", len(written))
		}
	})
}

func TestSetDone(t *testing.T) {
	ctx := context.Background()

	seed := func() *store.Store {
		st := store.New()
		st.ReplaceAll([]model.Task{
			{ID: 4, Name: "Client report", Kind: model.KindWork, Amount: 1500, Deadline: "2025-01-05", Owner: "Alice"},
		})
		return st
	}

	t.Run("Done stamps the canonical date", func(t *testing.T) {
		uc := newTestUseCase(seed(), &mockSource{}, &mockSnapshotStore{})

		out, err := uc.SetDone(ctx, testScope, tasklist.SetDoneInput{ID: 4, Done: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Done || out.Task.CompletedDate != "2025-01-09" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("Undone clears the completion date", func(t *testing.T) {
		uc := newTestUseCase(seed(), &mockSource{}, &mockSnapshotStore{})

		if _, err := uc.SetDone(ctx, testScope, tasklist.SetDoneInput{ID: 4, Done: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := uc.SetDone(ctx, testScope, tasklist.SetDoneInput{ID: 4, Done: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Done || out.Task.CompletedDate != "" {
			t.Errorf("unexpected task: %+v", out.Task)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		uc := newTestUseCase(seed(), &mockSource{}, &mockSnapshotStore{})

		_, err := uc.SetDone(ctx, testScope, tasklist.SetDoneInput{ID: 99, Done: true})
		if !errors.Is(err, tasklist.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	st := store.New()
	st.ReplaceAll([]model.Task{
		{ID: 1, Name: "Sweep", Kind: model.KindOther, Deadline: "2025-01-10", Owner: "Alice"},
		{ID: 2, Name: "Client report", Kind: model.KindWork, Amount: 1500, Deadline: "2025-01-05", Owner: "Ben"},
		{ID: 3, Name: "Groceries", Kind: model.KindOther, Deadline: "2025-01-11", Owner: "Alice"},
	})
	uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

	t.Run("All owners", func(t *testing.T) {
		out, err := uc.List(ctx, testScope, tasklist.ListInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 3 {
			t.Errorf("expected 3 tasks, got %d", len(out.Tasks))
		}
	})

	t.Run("Filter by owner", func(t *testing.T) {
		out, err := uc.List(ctx, testScope, tasklist.ListInput{Owner: "Alice"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 2 || out.Tasks[0].ID != 1 || out.Tasks[1].ID != 3 {
			t.Errorf("unexpected tasks: %+v", out.Tasks)
		}
	})

	t.Run("Unknown owner", func(t *testing.T) {
		_, err := uc.List(ctx, testScope, tasklist.ListInput{Owner: "Mallory"})
		if !errors.Is(err, tasklist.ErrUnknownOwner) {
			t.Errorf("expected ErrUnknownOwner, got %v", err)
		}
	})
}

func TestReminders(t *testing.T) {
	ctx := context.Background()

	// Canonical today is 2025-01-09.
	st := store.New()
	st.ReplaceAll([]model.Task{
		{ID: 1, Name: "Due tomorrow", Deadline: "2025-01-10", Owner: "Alice"},
		{ID: 2, Name: "Four days late", Deadline: "2025-01-05", Owner: "Ben"},
		{ID: 3, Name: "Already done", Deadline: "2025-01-01", Done: true, CompletedDate: "2025-01-02", Owner: "Alice"},
		{ID: 4, Name: "One day late", Deadline: "2025-01-08", Owner: "Alice"},
		{ID: 5, Name: "Garbled deadline", Deadline: "soon", Owner: "Ben"},
	})
	uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

	out, err := uc.Reminders(ctx, testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Reminders) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(out.Reminders))
	}
	if out.Reminders[0].Task.ID != 2 || out.Reminders[0].OverdueDays != 4 {
		t.Errorf("most overdue first: got %+v", out.Reminders[0])
	}
	if out.Reminders[1].Task.ID != 4 || out.Reminders[1].OverdueDays != 1 {
		t.Errorf("unexpected second reminder: %+v", out.Reminders[1])
	}
	for _, r := range out.Reminders {
		if r.Task.ID == 3 {
			t.Errorf("done task must not appear in reminders")
		}
		if r.Task.ID == 1 && r.OverdueDays != 0 {
			t.Errorf("future deadline must report 0 overdue days, got %d", r.OverdueDays)
		}
		if r.Task.ID == 5 && r.OverdueDays != 0 {
			t.Errorf("garbled deadline should read as 0 overdue days, got %d", r.OverdueDays)
		}
	}
}

func TestEarnings(t *testing.T) {
	ctx := context.Background()

	// Canonical today is 2025-01-09 (Thursday, ISO week 2025-W02).
	st := store.New()
	st.ReplaceAll([]model.Task{
		{ID: 1, Name: "Today's job", Kind: model.KindWork, Amount: 500, Deadline: "2025-01-09", Done: true, CompletedDate: "2025-01-09", Owner: "Alice"},
		{ID: 2, Name: "Monday's job", Kind: model.KindWork, Amount: 300, Deadline: "2025-01-06", Done: true, CompletedDate: "2025-01-06", Owner: "Ben"},
		{ID: 3, Name: "Last week", Kind: model.KindWork, Amount: 200, Deadline: "2025-01-03", Done: true, CompletedDate: "2025-01-03", Owner: "Alice"},
		{ID: 4, Name: "Last month", Kind: model.KindWork, Amount: 900, Deadline: "2024-12-20", Done: true, CompletedDate: "2024-12-20", Owner: "Ben"},
		{ID: 5, Name: "Unfinished job", Kind: model.KindWork, Amount: 5000, Deadline: "2025-01-09", Owner: "Alice"},
		{ID: 6, Name: "Done chore", Kind: model.KindOther, Deadline: "2025-01-09", Done: true, CompletedDate: "2025-01-09", Owner: "Ben"},
	})
	uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

	out, err := uc.Earnings(ctx, testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Today != "2025-01-09" {
		t.Errorf("Today = %q, want 2025-01-09", out.Today)
	}
	if out.Daily != 500 {
		t.Errorf("Daily = %v, want 500", out.Daily)
	}
	if out.Weekly != 800 {
		t.Errorf("Weekly = %v, want 800", out.Weekly)
	}
	if out.Monthly != 1000 {
		t.Errorf("Monthly = %v, want 1000", out.Monthly)
	}
}

func TestReload(t *testing.T) {
	ctx := context.Background()

	remote := []model.Task{
		{ID: 7, Name: "Remote task", Kind: model.KindOther, Deadline: "2025-01-20", Owner: "Alice"},
	}

	t.Run("Remote replaces local state", func(t *testing.T) {
		st := store.New()
		st.ReplaceAll([]model.Task{{ID: 1, Name: "Stale", Deadline: "2025-01-01", Owner: "Ben"}})
		source := &mockSource{
			loadFunc: func(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
				return remote, taskcsv.Report{Loaded: 1}, nil
			},
		}
		uc := newTestUseCase(st, source, &mockSnapshotStore{})

		out, err := uc.Reload(ctx, testScope, tasklist.ReloadInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Fallback {
			t.Errorf("fallback should not be set on a remote success")
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != 7 {
			t.Errorf("unexpected tasks: %+v", out.Tasks)
		}
	})

	t.Run("Local edits defer a background reload", func(t *testing.T) {
		st := store.New()
		uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

		if _, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner: "Alice", Name: "Unsaved edit", Deadline: "2025-01-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Reload(ctx, testScope, tasklist.ReloadInput{})
		if !errors.Is(err, tasklist.ErrLocalEdits) {
			t.Errorf("expected ErrLocalEdits, got %v", err)
		}
		if st.Len() != 1 {
			t.Errorf("local edit must survive, store has %d tasks", st.Len())
		}
	})

	t.Run("Force overrides local edits", func(t *testing.T) {
		st := store.New()
		source := &mockSource{
			loadFunc: func(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
				return remote, taskcsv.Report{Loaded: 1}, nil
			},
		}
		uc := newTestUseCase(st, source, &mockSnapshotStore{})

		if _, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner: "Alice", Name: "Unsaved edit", Deadline: "2025-01-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Reload(ctx, testScope, tasklist.ReloadInput{Force: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != 7 {
			t.Errorf("unexpected tasks: %+v", out.Tasks)
		}
		if st.Dirty() {
			t.Errorf("forced reload must clear the dirty flag")
		}
	})

	t.Run("Remote failure adopts the durable snapshot", func(t *testing.T) {
		st := store.New()
		source := &mockSource{
			loadFunc: func(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
				return nil, taskcsv.Report{}, errors.New("connection refused")
			},
		}
		snapshots := &mockSnapshotStore{
			readFunc: func(ctx context.Context) ([]model.Task, error) {
				return remote, nil
			},
		}
		uc := newTestUseCase(st, source, snapshots)

		out, err := uc.Reload(ctx, testScope, tasklist.ReloadInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Fallback {
			t.Errorf("expected fallback to be reported")
		}
		if len(out.Tasks) != 1 || out.Tasks[0].ID != 7 {
			t.Errorf("unexpected tasks: %+v", out.Tasks)
		}
	})

	t.Run("Remote failure with no snapshot is an error", func(t *testing.T) {
		source := &mockSource{
			loadFunc: func(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
				return nil, taskcsv.Report{}, errors.New("connection refused")
			},
		}
		uc := newTestUseCase(store.New(), source, &mockSnapshotStore{})

		if _, err := uc.Reload(ctx, testScope, tasklist.ReloadInput{}); err == nil {
			t.Errorf("expected error when both remote and snapshot fail")
		}
	})
}

func TestPush(t *testing.T) {
	ctx := context.Background()

	t.Run("Success clears the dirty flag", func(t *testing.T) {
		st := store.New()
		var gotToken string
		var gotTasks []model.Task
		source := &mockWritableSource{
			saveFunc: func(ctx context.Context, tasks []model.Task, token string) error {
				gotTasks = tasks
				gotToken = token
				return nil
			},
		}
		uc := newTestUseCase(st, source, &mockSnapshotStore{})

		if _, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner: "Alice", Name: "Sweep", Deadline: "2025-01-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Push(ctx, testScope, tasklist.PushInput{Token: "ghp_example"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Saved != 1 || len(gotTasks) != 1 {
			t.Errorf("expected 1 task saved, got out=%+v tasks=%d", out, len(gotTasks))
		}
		if gotToken != "ghp_example" {
			t.Errorf("token not forwarded to the source")
		}
		if st.Dirty() {
			t.Errorf("push must clear the dirty flag")
		}
	})

	t.Run("Read-only source", func(t *testing.T) {
		uc := newTestUseCase(store.New(), &mockSource{}, &mockSnapshotStore{})

		_, err := uc.Push(ctx, testScope, tasklist.PushInput{Token: "ghp_example"})
		if !errors.Is(err, tasklist.ErrReadOnlySource) {
			t.Errorf("expected ErrReadOnlySource, got %v", err)
		}
	})

	t.Run("Save failure keeps the dirty flag", func(t *testing.T) {
		st := store.New()
		source := &mockWritableSource{
			saveFunc: func(ctx context.Context, tasks []model.Task, token string) error {
				return repository.ErrSaveConflict
			},
		}
		uc := newTestUseCase(st, source, &mockSnapshotStore{})

		if _, err := uc.Add(ctx, testScope, tasklist.AddInput{
			Owner: "Alice", Name: "Sweep", Deadline: "2025-01-15",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Push(ctx, testScope, tasklist.PushInput{Token: "ghp_example"})
		if !errors.Is(err, repository.ErrSaveConflict) {
			t.Errorf("expected ErrSaveConflict, got %v", err)
		}
		if !st.Dirty() {
			t.Errorf("failed push must keep the dirty flag")
		}
	})
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()

	st := store.New()
	st.ReplaceAll([]model.Task{
		{ID: 1, Name: "Sweep", Kind: model.KindOther, Deadline: "2025-01-10", Owner: "Alice"},
	})
	uc := newTestUseCase(st, &mockSource{}, &mockSnapshotStore{})

	csvText, err := uc.ExportCSV(ctx, testScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(csvText, taskcsv.Header) {
		t.Errorf("export must start with the header, got %q", csvText)
	}
	if !strings.Contains(csvText, "1,Sweep,other,0,2025-01-10,false,,Alice") {
		t.Errorf("unexpected export body: %q", csvText)
	}
}

func TestToday(t *testing.T) {
	uc := newTestUseCase(store.New(), &mockSource{}, &mockSnapshotStore{})

	out := uc.Today(context.Background())
	if out.CanonicalDate != "2025-01-09" {
		t.Errorf("CanonicalDate = %q, want 2025-01-09", out.CanonicalDate)
	}
	if out.DisplayDate != "January 9, 2025" {
		t.Errorf("DisplayDate = %q, want January 9, 2025", out.DisplayDate)
	}
}
