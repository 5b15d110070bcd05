package usecase

import (
	"context"
	"sort"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/pkg/dateutil"
)

// List returns the tasks in insertion order, optionally for one owner.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input tasklist.ListInput) (tasklist.ListOutput, error) {
	all := uc.store.Snapshot()
	if input.Owner == "" {
		return tasklist.ListOutput{Tasks: all}, nil
	}
	if !uc.knownOwner(input.Owner) {
		return tasklist.ListOutput{}, tasklist.ErrUnknownOwner
	}

	tasks := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.Owner == input.Owner {
			tasks = append(tasks, t)
		}
	}
	return tasklist.ListOutput{Tasks: tasks}, nil
}

// Reminders returns incomplete tasks annotated with overdue days, most
// overdue first.
func (uc *implUseCase) Reminders(ctx context.Context, sc model.Scope) (tasklist.RemindersOutput, error) {
	today := uc.clock.TodayISO(uc.now())

	var reminders []tasklist.Reminder
	for _, t := range uc.store.Snapshot() {
		if t.Done {
			continue
		}
		reminders = append(reminders, tasklist.Reminder{
			Task:        t,
			OverdueDays: dateutil.OverdueDays(today, t.Deadline),
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].OverdueDays > reminders[j].OverdueDays
	})

	return tasklist.RemindersOutput{Reminders: reminders}, nil
}

// Earnings sums done work tasks over the three windows containing the
// canonical current date. The windows are independent: a task completed
// today contributes to all three.
func (uc *implUseCase) Earnings(ctx context.Context, sc model.Scope) (tasklist.EarningsOutput, error) {
	today := uc.clock.TodayISO(uc.now())
	out := tasklist.EarningsOutput{Today: today}

	for _, t := range uc.store.Snapshot() {
		if !t.Done || !t.IsWork() {
			continue
		}
		if t.CompletedDate == today {
			out.Daily += t.Amount
		}
		if dateutil.SameISOWeek(t.CompletedDate, today) {
			out.Weekly += t.Amount
		}
		if dateutil.SameMonth(t.CompletedDate, today) {
			out.Monthly += t.Amount
		}
	}

	return out, nil
}

// Today reports both forms of the current date.
func (uc *implUseCase) Today(ctx context.Context) tasklist.TodayOutput {
	now := uc.now()
	return tasklist.TodayOutput{
		CanonicalDate: uc.clock.TodayISO(now),
		DisplayDate:   uc.clock.DisplayDate(now),
	}
}
