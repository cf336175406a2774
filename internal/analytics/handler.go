package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hifz-backend/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/analytics/attendance", h.Overview)
}

func (h *Handler) Overview(c *gin.Context) {
	res, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
