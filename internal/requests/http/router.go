package http

import "github.com/gin-gonic/gin"

// Register attaches project-request routes to the given group.
// Creation is public; everything else sits behind the auth middleware
// the caller applies to authed.
func (h *Handler) Register(public, authed *gin.RouterGroup) {
	public.POST("", h.create)

	authed.GET("", h.list)
	authed.GET("/:id", h.get)
	authed.PATCH("/:id", h.updateStatus)
	authed.DELETE("/:id", h.delete)
}
