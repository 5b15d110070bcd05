package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/middleware"
	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/pkg/response"
)

// Create adds a new task for one of the configured owners.
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskResp{Task: output.Task})
}

// SetDone toggles a task's done state.
func (h *handler) SetDone(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetDoneReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SetDone(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetDone: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, taskResp{Task: output.Task})
}

// List returns the tasks, optionally filtered to one owner.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(output))
}

// Reminders returns incomplete tasks, most overdue first.
func (h *handler) Reminders(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Reminders(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Reminders: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRemindersResp(output))
}

// Earnings returns the day, week and month earnings windows.
func (h *handler) Earnings(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Earnings(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Earnings: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newEarningsResp(output))
}

// Export returns the task list as CSV text.
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	csvText, err := h.uc.ExportCSV(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCSV: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

// Reload replaces the list from the remote source.
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReloadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reload(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReloadResp(output))
}

// Push writes the list back through the remote source using the remote
// token attached to the caller's session.
func (h *handler) Push(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := h.authUC.RemoteToken(ctx, middleware.GetSessionToken(c))
	if err != nil {
		h.l.Errorf(ctx, "authUC.RemoteToken: %v", err)
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Push(ctx, middleware.GetScope(c), tasklist.PushInput{Token: token})
	if err != nil {
		h.l.Errorf(ctx, "uc.Push: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, pushResp{Saved: output.Saved})
}

// Today returns the canonical and display forms of the current date.
func (h *handler) Today(c *gin.Context) {
	output := h.uc.Today(c.Request.Context())
	response.OK(c, todayResp{
		CanonicalDate: output.CanonicalDate,
		DisplayDate:   output.DisplayDate,
	})
}
