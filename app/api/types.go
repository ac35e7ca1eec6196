package api

import (
	"context"

	"github.com/singgihasu/gramlens/app/database"
	"github.com/singgihasu/gramlens/app/instagram"
)

type InspectorInterface interface {
	Run(ctx context.Context, rawURL string) ([]instagram.MediaItem, error)
}

var _ InspectorInterface = (*instagram.Inspector)(nil)

type DiagnosticsInterface interface {
	Run(ctx context.Context) database.Report
}

var _ DiagnosticsInterface = (*database.Diagnostics)(nil)

type Handler struct {
	inspector   InspectorInterface
	diagnostics DiagnosticsInterface
}

// InspectRequest is the body of POST /api/instagram/inspect.
type InspectRequest struct {
	URL string `json:"url"`
}
