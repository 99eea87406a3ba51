package device

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ViewportFromRequest reads what a browser tells us about its window. Explicit
// vw/vh query parameters win over client hints; anything missing comes from fallback.
func ViewportFromRequest(r *http.Request, fallback Viewport) Viewport {
	v := fallback
	if r == nil {
		return v
	}

	query := r.URL.Query()
	if width, ok := firstPositive(query.Get("vw"), r.Header.Get("Sec-CH-Viewport-Width"), r.Header.Get("Viewport-Width")); ok {
		v.Width = width
	}
	if height, ok := firstPositive(query.Get("vh"), r.Header.Get("Sec-CH-Viewport-Height")); ok {
		v.Height = height
	}

	if ua := r.UserAgent(); ua != "" {
		v.UserAgent = ua
	}
	if strings.TrimSpace(r.Header.Get("Sec-CH-UA-Mobile")) == "?1" && v.MaxTouchPoints == 0 {
		v.MaxTouchPoints = 1
	}
	return v
}

func firstPositive(values ...string) (float64, bool) {
	for _, raw := range values {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err == nil && parsed > 0 && !math.IsInf(parsed, 0) && !math.IsNaN(parsed) {
			return parsed, true
		}
	}
	return 0, false
}
