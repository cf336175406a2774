package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hifz-backend/internal/platform/apperr"
	"hifz-backend/internal/platform/auth"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/attendance", h.List)
	r.POST("/attendance", h.Create)
	r.PUT("/attendance/:record_id", h.Update)
	r.DELETE("/attendance/:record_id", h.Delete)
	r.DELETE("/attendance/:record_id/attachments/:index", h.DeleteAttachment)
}

func callerFrom(c *gin.Context) Caller {
	return Caller{
		UserID: c.GetString(auth.CtxUserIDKey),
		Role:   c.GetString(auth.CtxRoleKey),
		SlotID: c.GetString(auth.CtxSlotIDKey),
	}
}

func (h *Handler) List(c *gin.Context) {
	var slotFilter *string
	if v := c.Query("slot_id"); v != "" {
		slotFilter = &v
	}
	out, err := h.svc.List(c.Request.Context(), callerFrom(c), slotFilter)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "total": len(out)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), callerFrom(c), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.Header("Location", "/attendance/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), callerFrom(c), c.Param("record_id"), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), callerFrom(c), c.Param("record_id")); err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *Handler) DeleteAttachment(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("index must be a number"))
		return
	}
	res, err := h.svc.DeleteAttachment(c.Request.Context(), callerFrom(c), c.Param("record_id"), index)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
