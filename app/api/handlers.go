package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/singgihasu/gramlens/app/instagram"
)

func NewHandler(inspector InspectorInterface, diagnostics DiagnosticsInterface) *Handler {
	return &Handler{
		inspector:   inspector,
		diagnostics: diagnostics,
	}
}

func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the Gramlens backend!"})
}

func (h *Handler) GetHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

func (h *Handler) GetDatabaseStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.Run(c.Request.Context()))
}

func (h *Handler) Inspect(c *gin.Context) {
	var req InspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	items, err := h.inspector.Run(c.Request.Context(), req.URL)
	if err != nil {
		var inspectErr *instagram.Error
		if errors.As(err, &inspectErr) {
			slog.Error("Inspection failed", "url", req.URL, "status", inspectErr.StatusCode, "error", err)
			c.JSON(inspectErr.StatusCode, gin.H{"error": inspectErr.Message})
			return
		}

		slog.Error("Inspection failed", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
