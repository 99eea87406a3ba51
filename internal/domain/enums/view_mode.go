package enums

type ViewMode string

const (
	ViewModeMobile  ViewMode = "mobile"
	ViewModeDesktop ViewMode = "desktop"
)

// Layout is the discrete layout decision behind a ViewMode.
type Layout string

const (
	LayoutMobile          Layout = "mobile"
	LayoutTabletPortrait  Layout = "tablet-portrait"
	LayoutTabletLandscape Layout = "tablet-landscape"
	LayoutDesktop         Layout = "desktop"
)
