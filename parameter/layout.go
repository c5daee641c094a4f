package parameter

// Territory sizing defaults, in logical pixels

const (
	// IconSize is the smallest sensible territory extent; the minimum size
	// defaults to a single icon
	IconSize = 20.0

	// DefaultTerritoryWidth and DefaultTerritoryHeight are the spawn size
	// when a spawn request does not carry an expanse
	DefaultTerritoryWidth  = 600.0
	DefaultTerritoryHeight = 200.0

	// InnerMargin is the distance of tabs from the territory frame
	InnerMarginX = 3.0
	InnerMarginY = 3.0

	// OuterMargin governs spacing between territories
	OuterMarginX = 2.5
	OuterMarginY = 2.5
)
