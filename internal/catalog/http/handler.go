package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brisastudio/studio-booking-backend/internal/catalog"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// List handles GET /services.
func (h *Handler) List(c *gin.Context) {
	services := h.catalog.List()
	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, items)
}
