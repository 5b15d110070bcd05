package http

import (
	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/pkg/taskcsv"
)

// --- Request DTOs ---

type createReq struct {
	Owner    string  `json:"person"    binding:"required"`
	Name     string  `json:"task_name" binding:"required,min=1,max=255"`
	Kind     string  `json:"type"      binding:"omitempty,max=100"` // free text; only "work" carries an amount
	Amount   float64 `json:"amount"    binding:"omitempty,gte=0"`
	Deadline string  `json:"deadline"  binding:"required,datetime=2006-01-02"`
}

func (r createReq) toInput() tasklist.AddInput {
	return tasklist.AddInput{
		Owner:    model.Owner(r.Owner),
		Name:     r.Name,
		Kind:     model.TaskKind(r.Kind),
		Amount:   r.Amount,
		Deadline: r.Deadline,
	}
}

type setDoneReq struct {
	ID   int   `json:"-"` // populated from URI param
	Done *bool `json:"done" binding:"required"`
}

func (r setDoneReq) toInput() tasklist.SetDoneInput {
	return tasklist.SetDoneInput{ID: r.ID, Done: *r.Done}
}

type listReq struct {
	Owner string `form:"person"`
}

func (r listReq) toInput() tasklist.ListInput {
	return tasklist.ListInput{Owner: model.Owner(r.Owner)}
}

type reloadReq struct {
	Force bool `form:"force"`
}

func (r reloadReq) toInput() tasklist.ReloadInput {
	return tasklist.ReloadInput{Force: r.Force}
}

// --- Response DTOs ---

type taskResp struct {
	Task model.Task `json:"task"`
}

type listResp struct {
	Tasks []model.Task `json:"tasks"`
	Total int          `json:"total"`
}

func newListResp(out tasklist.ListOutput) listResp {
	return listResp{Tasks: out.Tasks, Total: len(out.Tasks)}
}

type reminderResp struct {
	Task        model.Task `json:"task"`
	OverdueDays int        `json:"overdue_days"`
}

type remindersResp struct {
	Reminders []reminderResp `json:"reminders"`
}

func newRemindersResp(out tasklist.RemindersOutput) remindersResp {
	reminders := make([]reminderResp, len(out.Reminders))
	for i, r := range out.Reminders {
		reminders[i] = reminderResp{Task: r.Task, OverdueDays: r.OverdueDays}
	}
	return remindersResp{Reminders: reminders}
}

type earningsResp struct {
	Today   string  `json:"today"`
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

func newEarningsResp(out tasklist.EarningsOutput) earningsResp {
	return earningsResp{
		Today:   out.Today,
		Daily:   out.Daily,
		Weekly:  out.Weekly,
		Monthly: out.Monthly,
	}
}

type reloadResp struct {
	Tasks    []model.Task   `json:"tasks"`
	Report   taskcsv.Report `json:"report"`
	Fallback bool           `json:"fallback"`
}

func newReloadResp(out tasklist.ReloadOutput) reloadResp {
	return reloadResp{Tasks: out.Tasks, Report: out.Report, Fallback: out.Fallback}
}

type pushResp struct {
	Saved int `json:"saved"`
}

type todayResp struct {
	CanonicalDate string `json:"canonical_date"`
	DisplayDate   string `json:"display_date"`
}
