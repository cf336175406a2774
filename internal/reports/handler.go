package reports

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hifz-backend/internal/platform/apperr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/reports/classes", h.Preview)
	r.GET("/reports/classes/pdf", h.DownloadPDF)
}

func (h *Handler) Preview(c *gin.Context) {
	res, err := h.svc.Preview(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	out, filename, err := h.svc.GeneratePDF(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}
