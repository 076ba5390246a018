package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/available-slots", h.AvailableSlots)
	g.POST("/book", h.Create)
	g.GET("/bookings", h.ListByPhone)
	g.DELETE("/bookings/:id", h.Cancel)
}
