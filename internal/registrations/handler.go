package registrations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hifz-backend/internal/platform/apperr"
)

type Handler struct{ svc *Service }

// RegisterPublicRoutes serves the registration form; RegisterAdminRoutes
// the dashboard's registration list.
func RegisterPublicRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/form", h.FormConfig)
	r.POST("/registrations", h.Create)
}

func RegisterAdminRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/registrations", h.List)
	r.DELETE("/registrations/:registration_id", h.Delete)
}

func (h *Handler) FormConfig(c *gin.Context) {
	res, err := h.svc.FormConfig(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apperr.Invalid("invalid json"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) List(c *gin.Context) {
	var slotID *string
	if v := c.Query("slot_id"); v != "" {
		slotID = &v
	}
	out, err := h.svc.List(c.Request.Context(), slotID)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": out, "total": len(out)})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("registration_id")); err != nil {
		c.JSON(apperr.HTTPStatus(err), apperr.From(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
