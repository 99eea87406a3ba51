package cliapp

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/Taha-Raees/zetratech-front/internal/device"
)

func (a *App) classifyDevice(_ context.Context, args []string) error {
	fs := newFlagSet("device")
	fallback := a.viewport()
	width := fs.Float64("width", fallback.Width, "viewport width in CSS pixels")
	height := fs.Float64("height", fallback.Height, "viewport height in CSS pixels")
	touchPoints := fs.Int("touch-points", 0, "reported maxTouchPoints")
	touch := fs.Bool("touch", fallback.TouchEvents, "touch events are supported")
	userAgent := fs.String("ua", "", "user agent")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if *width <= 0 {
		return fmt.Errorf("%w: --width must be positive", ErrUsage)
	}

	viewport := device.Viewport{
		Width:          *width,
		Height:         *height,
		MaxTouchPoints: *touchPoints,
		TouchEvents:    *touch,
		UserAgent:      *userAgent,
	}
	c := viewport.Classify()
	b := c.Breakpoints()

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "mode\t%s\n", c.Mode())
	fmt.Fprintf(tw, "layout\t%s\n", c.Layout())
	fmt.Fprintf(tw, "aspect ratio\t%.2f\n", c.AspectRatio)
	fmt.Fprintf(tw, "mobile\t%t\n", c.IsMobile)
	fmt.Fprintf(tw, "tablet\t%t\n", c.IsTablet)
	fmt.Fprintf(tw, "desktop\t%t\n", c.IsDesktop)
	fmt.Fprintf(tw, "touch\t%t\n", c.IsTouchDevice)
	fmt.Fprintf(tw, "portrait\t%t\n", c.IsPortrait)
	fmt.Fprintf(tw, "only tablet\t%t\n", b.OnlyTablet)
	return tw.Flush()
}
