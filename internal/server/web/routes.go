package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/liftlog/internal/common"
	"github.com/dmitrijs2005/liftlog/internal/server/models"
	"github.com/dmitrijs2005/liftlog/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Submit button values. The English aliases serve non-browser clients.
const (
	actionCreate      = "新增"
	actionCreateAlias = "create"
	actionKeep        = "上一筆"
	actionKeepAlias   = "keep"
)

func (h *Handler) index(c *gin.Context) {
	ctx := c.Request.Context()
	h.render(c, http.StatusOK, h.page(h.drafts.Get(ctx, sessionID(c))))
}

func (h *Handler) add(c *gin.Context) {
	ctx := c.Request.Context()
	sid := sessionID(c)
	draft := draftFromForm(c)

	switch c.PostForm("action") {
	case actionKeep, actionKeepAlias:
		h.drafts.Set(ctx, sid, draft)
		c.Redirect(http.StatusSeeOther, "/")

	case actionCreate, actionCreateAlias:
		ids, err := h.lifts.Create(ctx, createRequestFromForm(c))
		if err != nil {
			status, msg := errorStatus(err)
			h.logger.Warn(ctx, "create rejected", "status", status, "error", err)

			data := h.page(draft)
			data.ProjectName = c.PostForm("projectName")
			if d := c.PostForm("installDate"); d != "" {
				data.InstallDate = d
			}
			data.Error = msg
			h.render(c, status, data)
			return
		}
		h.drafts.Clear(ctx, sid)
		h.logger.Debug(ctx, "create accepted", "records", len(ids))
		c.Redirect(http.StatusSeeOther, "/")

	default:
		data := h.page(draft)
		data.Error = "未知的操作"
		h.render(c, http.StatusBadRequest, data)
	}
}

func (h *Handler) search(c *gin.Context) {
	ctx := c.Request.Context()
	q := searchQuery{
		ComponentID:  c.Query("componentId"),
		SerialNumber: c.Query("serialNumber"),
	}

	data := h.page(h.drafts.Get(ctx, sessionID(c)))
	data.Query = q
	data.Searched = true

	rec, err := h.lifts.Find(ctx, q.ComponentID, q.SerialNumber)
	switch {
	case err == nil:
		data.Result = rec
	case errors.Is(err, common.ErrorNotFound):
	default:
		status, msg := errorStatus(err)
		data.Error = msg
		h.render(c, status, data)
		return
	}

	h.render(c, http.StatusOK, data)
}

func draftFromForm(c *gin.Context) models.Draft {
	return models.Draft{
		ComponentID:     c.PostForm("componentId"),
		SerialNumber:    c.PostForm("serialNumber"),
		AxisAlphaStart:  c.PostForm("axisAlphaStart"),
		AxisAlphaEnd:    c.PostForm("axisAlphaEnd"),
		AxisNumberStart: c.PostForm("axisNumberStart"),
		AxisNumberEnd:   c.PostForm("axisNumberEnd"),
	}
}

func createRequestFromForm(c *gin.Context) services.CreateLiftRequest {
	return services.CreateLiftRequest{
		ProjectName:     c.PostForm("projectName"),
		ComponentID:     c.PostForm("componentId"),
		SerialSpec:      c.PostForm("serialNumber"),
		InstallDate:     c.PostForm("installDate"),
		AxisAlphaStart:  c.PostForm("axisAlphaStart"),
		AxisAlphaEnd:    c.PostForm("axisAlphaEnd"),
		AxisNumberStart: c.PostForm("axisNumberStart"),
		AxisNumberEnd:   c.PostForm("axisNumberEnd"),
	}
}
