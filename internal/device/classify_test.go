package device

import (
	"testing"

	"github.com/Taha-Raees/zetratech-front/internal/domain/enums"
)

func TestClassifyMobileViewDerivation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		width      float64
		height     float64
		mobileView bool
		layout     enums.Layout
	}{
		{name: "tablet portrait", width: 800, height: 1000, mobileView: true, layout: enums.LayoutTabletPortrait},
		{name: "tablet landscape", width: 1000, height: 800, mobileView: false, layout: enums.LayoutTabletLandscape},
		{name: "phone portrait", width: 400, height: 800, mobileView: true, layout: enums.LayoutMobile},
		{name: "phone landscape", width: 400, height: 300, mobileView: true, layout: enums.LayoutMobile},
		{name: "desktop", width: 1200, height: 800, mobileView: false, layout: enums.LayoutDesktop},
		{name: "desktop portrait monitor", width: 1200, height: 1900, mobileView: false, layout: enums.LayoutDesktop},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tc.width, tc.height, false)
			if got.ShouldUseMobileView != tc.mobileView {
				t.Fatalf("ShouldUseMobileView = %v, want %v", got.ShouldUseMobileView, tc.mobileView)
			}
			if got.Layout() != tc.layout {
				t.Fatalf("Layout = %s, want %s", got.Layout(), tc.layout)
			}
		})
	}
}

func TestClassifyBreakpointsAreLowerInclusive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width                   float64
		mobile, tablet, desktop bool
	}{
		{width: 0, mobile: true},
		{width: 767, mobile: true},
		{width: 767.5, mobile: true},
		{width: 768, tablet: true},
		{width: 1023, tablet: true},
		{width: 1024, desktop: true},
		{width: 2560, desktop: true},
	}

	for _, tc := range cases {
		got := Classify(tc.width, 900, false)
		if got.IsMobile != tc.mobile || got.IsTablet != tc.tablet || got.IsDesktop != tc.desktop {
			t.Fatalf("width %v: unexpected classification %+v", tc.width, got)
		}
	}
}

func TestClassifyPartitionsAndIsDeterministic(t *testing.T) {
	t.Parallel()

	for width := 0.0; width <= 1600; width += 37 {
		for height := 1.0; height <= 1600; height += 53 {
			first := Classify(width, height, width > 900)
			second := Classify(width, height, width > 900)
			if first != second {
				t.Fatalf("classification not deterministic for %vx%v", width, height)
			}

			brackets := 0
			for _, in := range []bool{first.IsMobile, first.IsTablet, first.IsDesktop} {
				if in {
					brackets++
				}
			}
			if brackets != 1 {
				t.Fatalf("%vx%v falls into %d brackets", width, height, brackets)
			}
			if first.IsPortrait == first.IsLandscape {
				t.Fatalf("%vx%v portrait and landscape must be exclusive", width, height)
			}
		}
	}
}

func TestClassifySquareAndDegenerateHeight(t *testing.T) {
	t.Parallel()

	square := Classify(900, 900, false)
	if !square.IsLandscape || square.ShouldUseMobileView {
		t.Fatalf("square tablet should be landscape desktop view: %+v", square)
	}

	zero := Classify(900, 0, false)
	if zero.AspectRatio != 1 || !zero.IsLandscape {
		t.Fatalf("zero height should be treated as ratio 1: %+v", zero)
	}
}

func TestTouchCapable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		points      int
		touchEvents bool
		ua          string
		want        bool
	}{
		{name: "touch points", points: 5, want: true},
		{name: "touch events", touchEvents: true, want: true},
		{name: "ipad agent", ua: "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)", want: true},
		{name: "lowercase android", ua: "mozilla/5.0 (linux; android 14)", want: true},
		{name: "opera mini", ua: "Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", want: true},
		{name: "desktop", ua: "Mozilla/5.0 (X11; Linux x86_64) Firefox/128.0", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := TouchCapable(tc.points, tc.touchEvents, tc.ua); got != tc.want {
				t.Fatalf("TouchCapable = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassificationModeAndBreakpoints(t *testing.T) {
	t.Parallel()

	tablet := Classify(900, 1200, true)
	if tablet.Mode() != enums.ViewModeMobile {
		t.Fatalf("unexpected mode: %s", tablet.Mode())
	}
	bp := tablet.Breakpoints()
	if !bp.AboveMobile || bp.AboveTablet || !bp.BelowDesktop || !bp.OnlyTablet || bp.OnlyMobile || bp.OnlyDesktop {
		t.Fatalf("unexpected breakpoints: %+v", bp)
	}

	if Classify(1440, 900, false).Mode() != enums.ViewModeDesktop {
		t.Fatalf("desktop viewport should select desktop mode")
	}
}
