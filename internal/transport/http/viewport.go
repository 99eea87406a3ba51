package httptransport

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Taha-Raees/zetratech-front/internal/device"
)

type viewportRequest struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	MaxTouchPoints int     `json:"maxTouchPoints"`
	TouchEvents    bool    `json:"touchEvents"`
	// Event is "resize" (default) or "orientation".
	Event string `json:"event"`
}

type viewportResponse struct {
	Mode                string  `json:"mode"`
	Layout              string  `json:"layout"`
	IsMobile            bool    `json:"isMobile"`
	IsTablet            bool    `json:"isTablet"`
	IsDesktop           bool    `json:"isDesktop"`
	IsTouchDevice       bool    `json:"isTouchDevice"`
	IsPortrait          bool    `json:"isPortrait"`
	IsLandscape         bool    `json:"isLandscape"`
	AspectRatio         float64 `json:"aspectRatio"`
	ShouldUseMobileView bool    `json:"shouldUseMobileView"`
	// Pending is set while an orientation change is still settling.
	Pending bool `json:"pending"`
}

func newViewportResponse(c device.Classification, pending bool) viewportResponse {
	return viewportResponse{
		Mode:                string(c.Mode()),
		Layout:              string(c.Layout()),
		IsMobile:            c.IsMobile,
		IsTablet:            c.IsTablet,
		IsDesktop:           c.IsDesktop,
		IsTouchDevice:       c.IsTouchDevice,
		IsPortrait:          c.IsPortrait,
		IsLandscape:         c.IsLandscape,
		AspectRatio:         c.AspectRatio,
		ShouldUseMobileView: c.ShouldUseMobileView,
		Pending:             pending,
	}
}

// handleViewport takes the resize and orientation events a page script reports.
func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	v := visitorFrom(r.Context())

	var req viewportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<12)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_VIEWPORT", "viewport body must be JSON")
		return
	}
	if req.Width <= 0 || req.Height < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_VIEWPORT", "width must be positive and height not negative")
		return
	}

	viewport := device.Viewport{
		Width:          req.Width,
		Height:         req.Height,
		MaxTouchPoints: req.MaxTouchPoints,
		TouchEvents:    req.TouchEvents,
		UserAgent:      r.UserAgent(),
	}

	switch strings.ToLower(strings.TrimSpace(req.Event)) {
	case "", "resize":
		writeJSON(w, http.StatusOK, newViewportResponse(v.Selector().Resize(viewport), false))
	case "orientation", "orientationchange":
		v.Selector().OrientationChange(viewport)
		writeJSON(w, http.StatusAccepted, newViewportResponse(v.Selector().Current(), true))
	default:
		writeError(w, http.StatusBadRequest, "INVALID_VIEWPORT", "event must be resize or orientation")
	}
}

// viewportFromRequest merges what the request says about the window into what the
// visitor last reported.
func viewportFromRequest(r *http.Request, v *Visitor) device.Viewport {
	return device.ViewportFromRequest(r, v.Selector().Viewport())
}
