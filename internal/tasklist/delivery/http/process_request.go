package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shared-task-tracker/pkg/response"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetDoneReq binds the done toggle body plus the URI id param.
func (h *handler) processSetDoneReq(c *gin.Context) (setDoneReq, error) {
	var req setDoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return req, response.NewHTTPError(400, "id must be an integer")
	}
	req.ID = id
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processReloadReq binds the reload query parameters.
func (h *handler) processReloadReq(c *gin.Context) (reloadReq, error) {
	var req reloadReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
