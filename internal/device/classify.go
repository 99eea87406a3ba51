// Package device decides which page variant a viewport gets.
package device

import (
	"regexp"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
)

const (
	MobileBreakpoint = 768
	TabletBreakpoint = 1024
)

var touchAgentPattern = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

type Classification struct {
	IsMobile            bool
	IsTablet            bool
	IsDesktop           bool
	IsTouchDevice       bool
	IsPortrait          bool
	IsLandscape         bool
	AspectRatio         float64
	ShouldUseMobileView bool
}

// Classify is a pure function of the viewport. A non-positive height has no
// meaningful ratio and is treated as square.
func Classify(width, height float64, touchCapable bool) Classification {
	aspectRatio := 1.0
	if height > 0 {
		aspectRatio = width / height
	}

	isMobile := width < MobileBreakpoint
	isTablet := width >= MobileBreakpoint && width < TabletBreakpoint
	isPortrait := aspectRatio < 1

	return Classification{
		IsMobile:            isMobile,
		IsTablet:            isTablet,
		IsDesktop:           width >= TabletBreakpoint,
		IsTouchDevice:       touchCapable,
		IsPortrait:          isPortrait,
		IsLandscape:         !isPortrait,
		AspectRatio:         aspectRatio,
		ShouldUseMobileView: isMobile || (isTablet && isPortrait),
	}
}

// TouchCapable reports touch support either from the reported capability or from
// a known touch user agent.
func TouchCapable(maxTouchPoints int, hasTouchEvents bool, userAgent string) bool {
	return hasTouchEvents || maxTouchPoints > 0 || touchAgentPattern.MatchString(userAgent)
}

func (c Classification) Mode() enums.ViewMode {
	if c.ShouldUseMobileView {
		return enums.ViewModeMobile
	}
	return enums.ViewModeDesktop
}

func (c Classification) Layout() enums.Layout {
	switch {
	case c.IsMobile:
		return enums.LayoutMobile
	case c.IsTablet && c.IsPortrait:
		return enums.LayoutTabletPortrait
	case c.IsTablet:
		return enums.LayoutTabletLandscape
	default:
		return enums.LayoutDesktop
	}
}

type Breakpoints struct {
	AboveMobile  bool
	AboveTablet  bool
	BelowDesktop bool
	OnlyMobile   bool
	OnlyTablet   bool
	OnlyDesktop  bool
}

func (c Classification) Breakpoints() Breakpoints {
	return Breakpoints{
		AboveMobile:  !c.IsMobile,
		AboveTablet:  c.IsDesktop,
		BelowDesktop: !c.IsDesktop,
		OnlyMobile:   c.IsMobile,
		OnlyTablet:   c.IsTablet && !c.IsMobile,
		OnlyDesktop:  c.IsDesktop,
	}
}

// Viewport is one observation of the client's window.
type Viewport struct {
	Width          float64
	Height         float64
	MaxTouchPoints int
	TouchEvents    bool
	UserAgent      string
}

func (v Viewport) Classify() Classification {
	return Classify(v.Width, v.Height, TouchCapable(v.MaxTouchPoints, v.TouchEvents, v.UserAgent))
}
